// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package httpclient provides the shared retrying JSON client used for all
// outbound provider calls.
//
// Retries apply uniformly to network errors and non-2xx statuses. A 4xx that
// will fail identically on every attempt is still retried; callers that need
// to distinguish should inspect the returned [StatusError].
package httpclient
