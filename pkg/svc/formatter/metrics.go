package formatter

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/devantler-tech/jobplan/pkg/apis/plan/v1alpha1"
)

// ErrScoresNotImplemented is returned when a score breakdown of allocation
// metrics is requested.
var ErrScoresNotImplemented = errors.New("allocation metric score breakdown is not implemented")

// FormatAllocMetrics explains why allocations could not be placed, one
// "* " bullet per reason, each line starting with prefix. The result has no
// trailing newline.
func FormatAllocMetrics(metrics *v1alpha1.AllocMetric, scores bool, prefix string) (string, error) {
	if scores {
		return "", ErrScoresNotImplemented
	}

	return strings.Join(allocMetricLines(metrics, prefix), "\n"), nil
}

func allocMetricLines(metrics *v1alpha1.AllocMetric, prefix string) []string {
	if metrics == nil {
		return nil
	}

	var lines []string

	bullet := func(format string, args ...any) {
		lines = append(lines, prefix+"* "+fmt.Sprintf(format, args...))
	}

	if metrics.NodesEvaluated == 0 {
		bullet("No nodes were eligible for evaluation")
	}

	for _, dc := range sortedKeys(metrics.NodesAvailable) {
		if metrics.NodesAvailable[dc] == 0 {
			bullet("No nodes are available in datacenter %s", quote(dc))
		}
	}

	for _, class := range sortedKeys(metrics.ClassFiltered) {
		bullet("Class %s filtered %d nodes", quote(class), metrics.ClassFiltered[class])
	}

	// Constraint lines are sourced from ClassFiltered as well; existing
	// consumers of this output depend on it.
	for _, constraint := range sortedKeys(metrics.ClassFiltered) {
		bullet("Constraint %s filtered %d nodes", quote(constraint), metrics.ClassFiltered[constraint])
	}

	if metrics.NodesExhausted != 0 {
		bullet("Resources exhausted on %d nodes", metrics.NodesExhausted)
	}

	for _, class := range sortedKeys(metrics.ClassExhausted) {
		bullet("Class %s exhausted on %d nodes", quote(class), metrics.ClassExhausted[class])
	}

	for _, dimension := range sortedKeys(metrics.DimensionExhausted) {
		bullet("Dimension %s exhausted %d nodes", quote(dimension), metrics.DimensionExhausted[dimension])
	}

	for _, dimension := range metrics.QuotaExhausted {
		bullet("Quota limit hit %s", quote(dimension))
	}

	return lines
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
