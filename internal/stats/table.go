package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// formatTable renders headers and rows as space separated columns sized to
// the widest cell. Columns listed in rightAlign are padded on the left.
func formatTable(headers []string, rows [][]string, rightAlign map[int]bool) []string {
	all := rows
	if len(headers) > 0 {
		all = append([][]string{headers}, rows...)
	}
	widths := columnWidths(all)
	if len(widths) == 0 {
		return nil
	}
	lines := make([]string, 0, len(all))
	for _, row := range all {
		lines = append(lines, formatRow(row, widths, rightAlign))
	}
	return lines
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for i, value := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], displayWidth(value))
		}
	}
	return widths
}

func formatRow(row []string, widths []int, rightAlign map[int]bool) string {
	cells := make([]string, len(widths))
	for i, width := range widths {
		var value string
		if i < len(row) {
			value = row[i]
		}
		if rightAlign[i] {
			cells[i] = runewidth.FillLeft(value, width)
		} else {
			cells[i] = runewidth.FillRight(value, width)
		}
	}
	return strings.Join(cells, " ")
}
