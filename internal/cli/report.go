package cli

import (
	"strings"

	"github.com/fatih/color"
)

const (
	successTag = "[SUCCESS]"
	errorTag   = "[ERROR]"
)

// renderer colors the result tags of a report. Everything after the tag is
// passed through untouched, so a piped or forced-plain report stays
// byte-identical to the engine's output.
type renderer struct {
	success *color.Color
	failure *color.Color
}

// newRenderer builds a renderer honoring the color mode: "auto" leaves the
// library's terminal detection in charge, "always" and "never" force it.
func newRenderer(mode string) *renderer {
	r := &renderer{
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}

	switch mode {
	case "always":
		r.success.EnableColor()
		r.failure.EnableColor()
	case "never":
		r.success.DisableColor()
		r.failure.DisableColor()
	}

	return r
}

// Render recolors the leading tag of every report line.
func (r *renderer) Render(report string) string {
	if report == "" {
		return ""
	}

	var sb strings.Builder

	for _, line := range strings.SplitAfter(report, "\n") {
		switch {
		case strings.HasPrefix(line, successTag):
			sb.WriteString(r.success.Sprint(successTag))
			sb.WriteString(line[len(successTag):])
		case strings.HasPrefix(line, errorTag):
			sb.WriteString(r.failure.Sprint(errorTag))
			sb.WriteString(line[len(errorTag):])
		default:
			sb.WriteString(line)
		}
	}

	return sb.String()
}
