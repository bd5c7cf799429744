package formatter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/devantler-tech/jobplan/pkg/apis/plan/v1alpha1"
)

// FormatFieldDiff renders a single field as
// <start><marker><key pad><name>: <value pad><value>[ (<annotations>)].
func FormatFieldDiff(diff *v1alpha1.FieldDiff, startPrefix, keyPrefix, valuePrefix int) string {
	var out strings.Builder

	out.WriteString(pad(startPrefix))
	out.WriteString(styledMarker(diff.Type))
	out.WriteString(pad(keyPrefix))
	out.WriteString(diff.Name)
	out.WriteString(": ")
	out.WriteString(pad(valuePrefix))
	out.WriteString(fieldValue(diff))
	out.WriteString(annotationSuffix(diff.Annotations))

	return out.String()
}

// FormatObjectDiff renders an object header, its aligned body and a closing
// brace that sits under the body's hanging indent.
func FormatObjectDiff(diff *v1alpha1.ObjectDiff, startPrefix, keyPrefix int) string {
	markerLen := markerWidth(diff.Type)

	var out strings.Builder

	out.WriteString(pad(startPrefix))
	out.WriteString(styledMarker(diff.Type))
	out.WriteString(pad(keyPrefix))
	out.WriteString(diff.Name)
	out.WriteString(" {\n")

	longestField, longestMarker := LongestPrefixes(diff.Fields, diff.Objects)
	subStartPrefix := startPrefix + keyPrefix + markerLen + 2
	out.WriteString(AlignedFieldsAndObjects(
		diff.Fields, diff.Objects, subStartPrefix, longestField, longestMarker,
	))

	out.WriteString("\n")
	out.WriteString(pad(startPrefix + markerLen + keyPrefix))
	out.WriteString("}")

	return out.String()
}

func fieldValue(diff *v1alpha1.FieldDiff) string {
	switch diff.Type {
	case v1alpha1.DiffTypeAdded:
		return quote(diff.New)
	case v1alpha1.DiffTypeDeleted:
		return quote(diff.Old)
	case v1alpha1.DiffTypeEdited:
		return quote(diff.Old) + " => " + quote(diff.New)
	default:
		return quote(diff.New)
	}
}

// quote wraps a scalar in double quotes. Embedded quotes are left as-is.
//
// TODO: escape embedded quotes once downstream consumers of the plan text no
// longer match on the unescaped form.
func quote(value any) string {
	return `"` + stringify(value) + `"`
}

func stringify(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case json.Number:
		return typed.String()
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(typed), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(typed)
	default:
		return fmt.Sprint(typed)
	}
}
