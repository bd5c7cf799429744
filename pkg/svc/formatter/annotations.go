package formatter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/devantler-tech/jobplan/pkg/ui/style"
)

// updateColors maps task group update kinds to their display color.
//
//nolint:gochecknoglobals // fixed lookup table
var updateColors = map[string]style.Color{
	"ignore":                style.Green,
	"create":                style.Green,
	"destroy":               style.Red,
	"migrate":               style.Blue,
	"canary":                style.Blue,
	"in-place update":       style.Cyan,
	"create/destroy update": style.Yellow,
}

// annotationColors maps field and task annotations to their display color.
//
//nolint:gochecknoglobals // fixed lookup table
var annotationColors = map[string]style.Color{
	"forces create":                style.Green,
	"forces destroy":               style.Red,
	"forces in-place update":       style.Cyan,
	"forces create/destroy update": style.Yellow,
}

// ColorUpdates renders task group update counts as "<count> <kind>" entries in
// lexicographic kind order, joined by ", ". Unknown kinds stay uncolored.
func ColorUpdates(updates map[string]uint64) string {
	kinds := make([]string, 0, len(updates))
	for kind := range updates {
		kinds = append(kinds, kind)
	}

	slices.Sort(kinds)

	parts := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		text := fmt.Sprintf("%d %s", updates[kind], kind)
		parts = append(parts, style.Fg(updateColors[kind]).Render(text))
	}

	return strings.Join(parts, ", ")
}

// ColorAnnotations renders annotations in their given order, joined by ", ".
// Annotations share the update-kind colors; "forces ..." annotations have
// their own.
func ColorAnnotations(annotations []string) string {
	parts := make([]string, 0, len(annotations))

	for _, annotation := range annotations {
		parts = append(parts, style.Fg(annotationColor(annotation)).Render(annotation))
	}

	return strings.Join(parts, ", ")
}

func annotationColor(annotation string) style.Color {
	if color, ok := annotationColors[annotation]; ok {
		return color
	}

	return updateColors[annotation]
}

func annotationSuffix(annotations []string) string {
	if len(annotations) == 0 {
		return ""
	}

	return " (" + ColorAnnotations(annotations) + ")"
}
