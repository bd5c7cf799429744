package formatter

import (
	"fmt"
	"strings"

	"github.com/devantler-tech/jobplan/pkg/apis/plan/v1alpha1"
	"github.com/devantler-tech/jobplan/pkg/ui/style"
)

const (
	metricsIndent    = "    "
	taskGroupIndent  = "  "
	trailingSpace    = " \t\r\n"
	allocatedMessage = "All tasks successfully allocated."
)

// FormatDryRun summarises the scheduler's dry run: either that every
// allocation was placed, or, per failing task group in name order, why some
// were not. A rolling-update follow-up evaluation adds a closing note. The
// result has no trailing whitespace.
func FormatDryRun(resp *v1alpha1.PlanResponse, jobKind v1alpha1.JobKind) string {
	var out strings.Builder

	if !resp.HasFailedAllocations() {
		out.WriteString(style.Success.WithBold().Render(allocatedMessage))
		out.WriteString("\n")
	} else {
		writeFailedAllocations(&out, resp.FailedTGAllocs, jobKind)
	}

	summary := strings.TrimRight(out.String(), trailingSpace)

	if rolling := resp.RollingUpdateEval(); rolling != nil {
		note := fmt.Sprintf("Rolling update, next evaluation will be in %s.", rolling.Wait)
		summary += "\n" + style.Success.Render(note)
	}

	return strings.TrimRight(summary, trailingSpace)
}

func writeFailedAllocations(
	out *strings.Builder,
	failed map[string]*v1alpha1.AllocMetric,
	jobKind v1alpha1.JobKind,
) {
	headline := "WARNING: Failed to place all allocations."
	if jobKind == v1alpha1.JobKindSystem {
		headline = "WARNING: Failed to place allocations on all nodes."
	}

	out.WriteString(style.Warning.WithBold().Render(headline))
	out.WriteString("\n")

	for _, group := range sortedKeys(failed) {
		metrics := failed[group]

		count := 1
		if metrics != nil {
			count += metrics.CoalescedFailures
		}

		noun := "allocation"
		if count != 1 {
			noun += "s"
		}

		header := fmt.Sprintf("%sTask Group %s (failed to place %d %s):",
			taskGroupIndent, quote(group), count, noun)
		out.WriteString(style.Warning.Render(header))
		out.WriteString("\n")

		for _, line := range allocMetricLines(metrics, metricsIndent) {
			out.WriteString(style.Warning.Render(line))
			out.WriteString("\n")
		}

		out.WriteString("\n")
	}
}
