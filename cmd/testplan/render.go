package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/metalagman/testplan/internal/testplan"
)

const (
	defaultStyle = "auto"
	wrapWidth    = 100
)

var (
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	faintStyle = lipgloss.NewStyle().Faint(true)
)

func renderMarkdown(md, style string) (string, error) {
	styleOpt := glamour.WithStandardStyle(style)
	if style == "" || style == defaultStyle {
		styleOpt = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(wrapWidth))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

func printSummary(w io.Writer, ticketID string, res *testplan.Result) {
	status := okStyle.Render("ok")
	if res.PlanErr != nil {
		status = failStyle.Render("failed")
	}
	line := status + " " + ticketID
	if summary := res.Issue.Summary(); summary != "" {
		line += " " + faintStyle.Render(summary)
	}
	if res.Path != "" {
		line += " -> " + res.Path
	}
	_, _ = fmt.Fprintln(w, line)
}
