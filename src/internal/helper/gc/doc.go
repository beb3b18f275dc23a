// Copyright (c) 2025 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides pooled byte buffers for I/O-heavy paths.
//
// The pool front-ends [github.com/valyala/bytebufferpool] behind small
// interfaces so callers never depend on the pool implementation directly.
package gc
