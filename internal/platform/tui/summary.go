package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hop/internal/storage"
)

// RenderSummary describes the session for printing after the program exits.
// Variants without runs are left out.
func RenderSummary(store *storage.Store, tickRate int) (string, error) {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return "", err
	}
	if len(stats) == 0 {
		return "No runs finished this session.\n", nil
	}
	if tickRate <= 0 {
		tickRate = 60
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var b strings.Builder
	b.WriteString(header.Render("Session summary"))
	b.WriteString("\n")
	for _, id := range ids {
		st := stats[id]
		fmt.Fprintf(&b, "%-12s runs %-4d best %-4d avg %-6.1f longest %s\n",
			id, st.GamesCount, st.HighScore, st.AvgScore, formatTicks(st.LongestRun, tickRate))
	}

	return box.Render(strings.TrimRight(b.String(), "\n")) + "\n", nil
}
