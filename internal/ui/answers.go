package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Row is one solved (or failed) day. Err fails the whole row while
// Part1Err and Part2Err blank out a single part.
type Row struct {
	Day      int
	Title    string
	Part1    int64
	Part2    int64
	Part1Err error
	Part2Err error
	Duration time.Duration
	Err      error
}

const (
	colDay = iota
	colTitle
	colPart1
	colPart2
	colTime
	colError
)

// RenderAnswers draws rows as a bordered table.
func RenderAnswers(rows []Row) string {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		line := []string{strconv.Itoa(r.Day), r.Title, "", "", formatDuration(r.Duration), ""}
		if r.Err != nil {
			line[colError] = r.Err.Error()
		} else {
			line[colPart1] = partCell(r.Part1, r.Part1Err)
			line[colPart2] = partCell(r.Part2, r.Part2Err)
			line[colError] = partErrors(r.Part1Err, r.Part2Err)
		}
		cells = append(cells, line)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("Day", "Title", "Part 1", "Part 2", "Time", "Error").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == colPart1 || col == colPart2:
				return answerStyle
			case col == colTime:
				return mutedStyle
			case col == colError:
				return errorStyle
			default:
				return cellStyle
			}
		})
	return t.String()
}

func partCell(v int64, err error) string {
	if err != nil {
		return "-"
	}
	return strconv.FormatInt(v, 10)
}

func partErrors(errs ...error) string {
	var msgs []string
	for i, err := range errs {
		if err != nil {
			msgs = append(msgs, fmt.Sprintf("part %d: %v", i+1, err))
		}
	}
	return strings.Join(msgs, "; ")
}

func formatDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "-"
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	default:
		return d.Round(100 * time.Microsecond).String()
	}
}
