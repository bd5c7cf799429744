// Package style describes terminal styling as abstract spans embedded in
// plain text, and turns those spans into ANSI escapes (or removes them) at the
// presentation edge.
//
// A span is written as a sequence of codes in square brackets followed by
// text and closed by [reset], e.g. "[bold][green]ok[reset]". Producers such as
// the plan formatter only ever build spans through [Style.Render]; consumers
// call [Colorizer.Colorize] or [Strip] right before writing to a terminal.
package style
