package formatter

import (
	"github.com/devantler-tech/jobplan/pkg/apis/plan/v1alpha1"
	"github.com/devantler-tech/jobplan/pkg/ui/style"
)

type marker struct {
	glyph string
	style style.Style
}

//nolint:gochecknoglobals // fixed lookup table
var markers = map[v1alpha1.DiffType]marker{
	v1alpha1.DiffTypeAdded:   {glyph: "+ ", style: style.Success},
	v1alpha1.DiffTypeDeleted: {glyph: "- ", style: style.Failure},
	v1alpha1.DiffTypeEdited:  {glyph: "+/- ", style: style.Warning},
}

// Marker returns the display prefix of a diff type and its width in columns.
// Unchanged and unknown types have no marker.
func Marker(diffType v1alpha1.DiffType) (string, int) {
	m, ok := markers[diffType]
	if !ok {
		return "", 0
	}

	return m.glyph, len(m.glyph)
}

func markerWidth(diffType v1alpha1.DiffType) int {
	_, width := Marker(diffType)

	return width
}

func styledMarker(diffType v1alpha1.DiffType) string {
	m, ok := markers[diffType]
	if !ok {
		return ""
	}

	return m.style.Render(m.glyph)
}
