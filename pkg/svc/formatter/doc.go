// Package formatter renders scheduler plan results as column-aligned,
// styled text.
//
// [FormatJobDiff] walks a job diff depth-first (job → task groups → tasks →
// fields and objects) and aligns every sibling block of fields and objects on
// two independent widths: the longest field name and the longest diff marker.
// [FormatDryRun] summarises allocation failures and rolling-update follow-ups.
//
// Output carries style spans from package style; callers decide whether to
// colorize or strip them. Rendering is a pure function of its inputs and never
// mutates the diff.
package formatter
