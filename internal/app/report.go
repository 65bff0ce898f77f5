package app

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// Reporter prints the user-facing progress of a run.
// Styles degrade to plain text when w is not a terminal.
type Reporter struct {
	w       io.Writer
	title   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

func NewReporter(w io.Writer) *Reporter {
	r := lipgloss.NewRenderer(w)
	return &Reporter{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		success: r.NewStyle().Foreground(lipgloss.Color("42")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

func (r *Reporter) Header(size int, outputDir string) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.title.Render("Generating team logos"))
	fmt.Fprintln(r.w, r.muted.Render(fmt.Sprintf("   Size: %dx%d pixels", size, size)))
	fmt.Fprintln(r.w, r.muted.Render(fmt.Sprintf("   Output: %s/", outputDir)))
	fmt.Fprintln(r.w)
}

func (r *Reporter) Created(path string) {
	fmt.Fprintln(r.w, r.success.Render("✓ Created "+filepath.Base(path)))
}

func (r *Reporter) Failed(teamID string, err error) {
	fmt.Fprintln(r.w, r.failure.Render(fmt.Sprintf("✗ %s: %v", teamID, err)))
}

func (r *Reporter) Done(created, failed int) {
	fmt.Fprintln(r.w)
	if failed == 0 {
		fmt.Fprintln(r.w, r.success.Render(fmt.Sprintf("Done! Created %d logos", created)))
		return
	}
	fmt.Fprintln(r.w, r.failure.Render(fmt.Sprintf("Created %d logos, %d failed", created, failed)))
}

func (r *Reporter) Preview(path string) {
	fmt.Fprintln(r.w, r.muted.Render("Preview sheet: "+path))
}

func (r *Reporter) NextSteps(outputDir string) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.title.Render("Next steps:"))
	fmt.Fprintln(r.w, r.muted.Render(fmt.Sprintf("   1. Copy every PNG from '%s/' into the app's asset catalog", outputDir)))
	fmt.Fprintln(r.w, r.muted.Render("   2. Keep the asset names as generated: logo-team-1, logo-team-2, ..."))
	fmt.Fprintln(r.w)
}
