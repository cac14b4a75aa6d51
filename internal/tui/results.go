// Package tui renders recommendation results for terminal output.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/anisuggest/internal/recommend"
)

type resultStyles struct {
	title   lipgloss.Style
	rating  lipgloss.Style
	genres  lipgloss.Style
	item    lipgloss.Style
	rank    lipgloss.Style
	message lipgloss.Style
}

func newResultStyles() resultStyles {
	return resultStyles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("254")),
		rating: lipgloss.NewStyle().
			Foreground(lipgloss.Color("178")),
		genres: lipgloss.NewStyle().
			Foreground(lipgloss.Color("247")).
			Faint(true),
		item: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		rank: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("110")),
		message: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
	}
}

// RenderResult formats a recommendation result as styled terminal output.
func RenderResult(result recommend.Result) string {
	styles := newResultStyles()
	var sb strings.Builder

	if result.Title != nil {
		seed := result.Title
		sb.WriteString(styles.title.Render(seed.Title))
		if seed.Score > 0 {
			sb.WriteString(" " + styles.rating.Render(fmt.Sprintf("(%.2f)", seed.Score)))
		}
		sb.WriteString("\n")
		if names := seed.GenreNames(); len(names) > 0 {
			sb.WriteString(styles.genres.Render(strings.Join(names, ", ")))
			sb.WriteString("\n")
		}
	}

	if len(result.Recommendations) > 0 {
		sb.WriteString("\n")
		for i, title := range result.Recommendations {
			rank := styles.rank.Render(fmt.Sprintf("%2d.", i+1))
			sb.WriteString(fmt.Sprintf("%s %s\n", rank, styles.item.Render(title)))
		}
	}

	if result.Message != "" {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(styles.message.Render(result.Message))
		sb.WriteString("\n")
	}

	return sb.String()
}
