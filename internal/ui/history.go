package ui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// HistoryRow is one recorded run.
type HistoryRow struct {
	ID       string
	Day      int
	Part1    int64
	Part2    int64
	Duration time.Duration
	SolvedAt time.Time
	// Input is the hex digest of the input the run used.
	Input string
}

// RenderHistory draws recorded runs, newest first as given.
func RenderHistory(rows []HistoryRow) string {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			short(r.ID),
			strconv.Itoa(r.Day),
			strconv.FormatInt(r.Part1, 10),
			strconv.FormatInt(r.Part2, 10),
			formatDuration(r.Duration),
			r.SolvedAt.Local().Format("2006-01-02 15:04:05"),
			short(r.Input),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("Run", "Day", "Part 1", "Part 2", "Time", "Solved", "Input").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 2 || col == 3:
				return answerStyle
			case col == 0 || col == 6:
				return mutedStyle
			default:
				return cellStyle
			}
		})
	return t.String()
}

func short(s string) string {
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
