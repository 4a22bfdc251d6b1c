package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/rogersnm/folio/internal/model"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	videoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	linkStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// RenderMarkdown renders a post body for the terminal.
func RenderMarkdown(content string) (string, error) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

func RenderField(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}

func RenderCategory(category string) string {
	return categoryStyle.Render(strings.ToUpper(model.CategoryDisplay(category)))
}

// RenderLinkKind labels a link tile; videos stand out from plain links.
func RenderLinkKind(kind model.LinkKind) string {
	if kind == model.LinkYouTube {
		return videoStyle.Render(string(kind))
	}
	return linkStyle.Render(string(kind))
}

func RenderEntityHeader(title string, fields []string) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(title))
	sb.WriteString("\n")
	for _, f := range fields {
		sb.WriteString("  " + f + "\n")
	}
	return sb.String()
}
