package formatter

import (
	"strings"
	"unicode/utf8"

	"github.com/devantler-tech/jobplan/pkg/apis/plan/v1alpha1"
)

// LongestPrefixes returns the two widths that align a block of sibling fields
// and objects: the longest field name and the widest diff marker. Objects
// contribute only to the marker width since they have no value column.
func LongestPrefixes(
	fields []*v1alpha1.FieldDiff,
	objects []*v1alpha1.ObjectDiff,
) (int, int) {
	longestField, longestMarker := 0, 0

	for _, field := range nonNil(fields) {
		longestField = max(longestField, nameWidth(field.Name))
		longestMarker = max(longestMarker, markerWidth(field.Type))
	}

	for _, object := range nonNil(objects) {
		longestMarker = max(longestMarker, markerWidth(object.Type))
	}

	return longestField, longestMarker
}

// AlignedFieldsAndObjects renders fields followed by objects, one per line,
// padding markers to longestMarker and field names to longestField. The block
// never ends with a newline.
func AlignedFieldsAndObjects(
	fields []*v1alpha1.FieldDiff,
	objects []*v1alpha1.ObjectDiff,
	startPrefix, longestField, longestMarker int,
) string {
	fields, objects = nonNil(fields), nonNil(objects)
	lines := make([]string, 0, len(fields)+len(objects))

	for _, field := range fields {
		keyPrefix := longestMarker - markerWidth(field.Type)
		valuePrefix := longestField - nameWidth(field.Name)
		lines = append(lines, FormatFieldDiff(field, startPrefix, keyPrefix, valuePrefix))
	}

	for _, object := range objects {
		keyPrefix := longestMarker - markerWidth(object.Type)
		lines = append(lines, FormatObjectDiff(object, startPrefix, keyPrefix))
	}

	return strings.Join(lines, "\n")
}

func nameWidth(name string) int {
	return utf8.RuneCountInString(name)
}

// pad returns n spaces, or nothing for n <= 0.
func pad(n int) string {
	if n <= 0 {
		return ""
	}

	return strings.Repeat(" ", n)
}

// nonNil drops nil entries so that absent nodes never shift separators.
func nonNil[T any](items []*T) []*T {
	for _, item := range items {
		if item == nil {
			out := make([]*T, 0, len(items))

			for _, kept := range items {
				if kept != nil {
					out = append(out, kept)
				}
			}

			return out
		}
	}

	return items
}
