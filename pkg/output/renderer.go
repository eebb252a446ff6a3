// Package output renders pipeline results and progress for the
// terminal. Styling degrades to plain text when stdout is not a TTY
// or when color is disabled.
package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/assort/pkg/copier"
	"github.com/arthur-debert/assort/pkg/organize"
)

// Renderer formats organize results as terminal output.
type Renderer struct{}

// NewRenderer creates a renderer. With noColor, or when stdout is not
// a terminal, all styles collapse to plain text.
func NewRenderer(noColor bool) *Renderer {
	if noColor || !stdoutIsTerminal() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{}
}

// RenderResult renders the outcome of an organize run.
func (r *Renderer) RenderResult(rootPath string, result organize.Result) string {
	if result.Failed() {
		return fmt.Sprintf("%s %s: %v", ErrorIndicator,
			TitleStyle.Render("Organize failed"), result.Err)
	}

	if result.DryRun {
		header := fmt.Sprintf("Organize %s (dry run)", PathStyle.Render(rootPath))
		return r.renderPlan(header, result.Plan)
	}

	var out strings.Builder
	header := fmt.Sprintf("Organized %s", PathStyle.Render(rootPath))
	out.WriteString(TitleStyle.Render(header) + "\n")

	if len(result.Copied) == 0 {
		out.WriteString(Indent(MutedStyle.Render("nothing to relocate"), 1) + "\n")
	}
	for _, path := range result.Copied {
		out.WriteString(Indent(fmt.Sprintf("%s %s", SuccessIndicator, path), 1) + "\n")
	}

	for _, w := range result.Warnings {
		out.WriteString(Indent(fmt.Sprintf("%s %s", WarningIndicator,
			WarningStyle.Render(w.String())), 1) + "\n")
	}

	out.WriteString(r.renderSummary(len(result.Dependencies), len(result.Copied), len(result.Warnings)))
	return out.String()
}

// RenderPlan renders the per-item verdicts for a root container.
func (r *Renderer) RenderPlan(rootPath string, plan []copier.Item) string {
	header := fmt.Sprintf("Plan for %s", PathStyle.Render(rootPath))
	return r.renderPlan(header, plan)
}

func (r *Renderer) renderPlan(header string, plan []copier.Item) string {
	var out strings.Builder
	out.WriteString(TitleStyle.Render(header) + "\n")

	for _, item := range plan {
		switch item.Decision {
		case copier.DecisionCopy:
			line := fmt.Sprintf("%s %s %s %s", SuccessIndicator, item.Path,
				MutedStyle.Render("->"), PathStyle.Render(item.Destination))
			out.WriteString(Indent(line, 1) + "\n")
		default:
			line := fmt.Sprintf("%s %s %s", SkipIndicator, item.Path,
				MutedStyle.Render("("+skipReason(item.Decision)+")"))
			out.WriteString(Indent(line, 1) + "\n")
		}
	}

	return out.String()
}

func (r *Renderer) renderSummary(deps, copied, warnings int) string {
	summary := fmt.Sprintf("%d dependencies, %d relocated", deps, copied)
	if warnings > 0 {
		summary += fmt.Sprintf(", %d warnings", warnings)
	}
	return MutedStyle.Render(summary) + "\n"
}

func skipReason(d copier.Decision) string {
	switch d {
	case copier.DecisionSkipCode:
		return "code asset"
	case copier.DecisionSkipExternal:
		return "outside repository"
	case copier.DecisionSkipUnlisted:
		return "no category"
	case copier.DecisionSkipOrganized:
		return "already organized"
	case copier.DecisionSkipUnloadable:
		return "unloadable"
	default:
		return string(d)
	}
}
