package formatter

import (
	"strings"

	"github.com/devantler-tech/jobplan/pkg/apis/plan/v1alpha1"
	"github.com/devantler-tech/jobplan/pkg/ui/style"
)

// FormatJobDiff renders a job diff. The job's own fields and objects are shown
// only when the job was edited or verbose is set; every task group is followed
// by a blank line.
func FormatJobDiff(job *v1alpha1.JobDiff, verbose bool) string {
	if job == nil {
		return ""
	}

	var out strings.Builder

	out.WriteString(styledMarker(job.Type))
	out.WriteString(style.Bold.Render("Job: " + quote(job.ID)))
	out.WriteString("\n")

	groups := nonNil(job.TaskGroups)

	// Field names align within the job; markers also line up with the task groups.
	longestField, longestMarker := LongestPrefixes(job.Fields, job.Objects)
	for _, group := range groups {
		longestMarker = max(longestMarker, markerWidth(group.Type))
	}

	if job.Type == v1alpha1.DiffTypeEdited || verbose {
		block := AlignedFieldsAndObjects(job.Fields, job.Objects, 0, longestField, longestMarker)
		if block != "" {
			out.WriteString(block)
			out.WriteString("\n")
		}
	}

	for _, group := range groups {
		groupPrefix := longestMarker - markerWidth(group.Type)
		out.WriteString(formatTaskGroupDiff(group, groupPrefix, verbose))
		out.WriteString("\n")
	}

	return out.String()
}

func formatTaskGroupDiff(group *v1alpha1.TaskGroupDiff, groupPrefix int, verbose bool) string {
	var out strings.Builder

	out.WriteString(styledMarker(group.Type))
	out.WriteString(pad(groupPrefix))
	out.WriteString(style.Bold.Render("Task Group: " + quote(group.Name)))

	if len(group.Updates) > 0 {
		out.WriteString(" (" + ColorUpdates(group.Updates) + ")")
	}

	out.WriteString("\n")

	tasks := nonNil(group.Tasks)

	// Field names align within the group; markers also line up with the tasks.
	longestField, longestMarker := LongestPrefixes(group.Fields, group.Objects)
	for _, task := range tasks {
		longestMarker = max(longestMarker, markerWidth(task.Type))
	}

	subStartPrefix := groupPrefix + 2

	if group.Type == v1alpha1.DiffTypeEdited || verbose {
		block := AlignedFieldsAndObjects(
			group.Fields, group.Objects, subStartPrefix, longestField, longestMarker,
		)
		if block != "" {
			out.WriteString(block)
			out.WriteString("\n")
		}
	}

	for _, task := range tasks {
		taskPrefix := longestMarker - markerWidth(task.Type)
		out.WriteString(formatTaskDiff(task, subStartPrefix, taskPrefix, verbose))
		out.WriteString("\n")
	}

	return out.String()
}

func formatTaskDiff(task *v1alpha1.TaskDiff, startPrefix, taskPrefix int, verbose bool) string {
	var out strings.Builder

	out.WriteString(pad(startPrefix))
	out.WriteString(styledMarker(task.Type))
	out.WriteString(pad(taskPrefix))
	out.WriteString(style.Bold.Render("Task: " + quote(task.Name)))
	out.WriteString(annotationSuffix(task.Annotations))

	switch {
	case task.Type.IsUnchanged():
		return out.String()
	case (task.Type == v1alpha1.DiffTypeAdded || task.Type == v1alpha1.DiffTypeDeleted) && !verbose:
		return out.String()
	}

	out.WriteString("\n")

	longestField, longestMarker := LongestPrefixes(task.Fields, task.Objects)
	out.WriteString(AlignedFieldsAndObjects(
		task.Fields, task.Objects, startPrefix+2, longestField, longestMarker,
	))

	return out.String()
}
