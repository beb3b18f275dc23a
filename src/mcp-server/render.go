// Copyright (c) 2026 Agoric OpCo All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/Agoric/agoric-dev-mcp/src/internal/trace"
)

// markdownTable renders header + rows as a markdown table.
func markdownTable(headers []string, rows [][]string) string {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header(headers)
	table.Bulk(rows)
	table.Render()
	return buf.String()
}

// renderTraceResult formats a trace step result as markdown: a heading, the
// item table with explorer links, and the step message when present.
func renderTraceResult(result *trace.TraceResult) string {
	var out strings.Builder
	out.WriteString("## " + result.Title + "\n\n")

	if !result.Found {
		out.WriteString("Not found.")
		if result.Message != "" {
			out.WriteString(" " + result.Message)
		}
		out.WriteString("\n")
		return out.String()
	}

	var rows [][]string
	for _, item := range result.Items {
		value := item.Value
		if item.Link != "" {
			value = fmt.Sprintf("[%s](%s)", item.Value, item.Link)
		}
		rows = append(rows, []string{item.Label, value})
	}
	out.WriteString(markdownTable([]string{"Field", "Value"}, rows))

	if result.Message != "" {
		out.WriteString("\n" + result.Message + "\n")
	}
	return out.String()
}

// renderPlan formats a trace plan as markdown, one section per step.
func renderPlan(plan []trace.PlanStep) string {
	var out strings.Builder
	out.WriteString("## Trace plan\n\n")
	for _, step := range plan {
		out.WriteString(fmt.Sprintf("### Step %d: `%s`\n\n%s\n\nParameters:\n", step.Step, step.Tool, step.Description))
		keys := make([]string, 0, len(step.Parameters))
		for key := range step.Parameters {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			out.WriteString(fmt.Sprintf("- `%s`: `%v`\n", key, step.Parameters[key]))
		}
		out.WriteString("\n")
	}
	return out.String()
}
