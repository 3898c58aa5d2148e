package console

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const indexHeader = "(index)"

// RenderTable draws rows in a box with a leading (index) column. String cells
// are single-quoted and centered.
func RenderTable(headers []string, rows [][]string) string {
	columns := append([]string{indexHeader}, headers...)

	cells := make([][]string, len(rows))
	for i, row := range rows {
		line := make([]string, len(columns))
		line[0] = strconv.Itoa(i)
		for j := range headers {
			if j < len(row) {
				line[j+1] = "'" + row[j] + "'"
			}
		}
		cells[i] = line
	}

	widths := make([]int, len(columns))
	for j, h := range columns {
		widths[j] = utf8.RuneCountInString(h) + 2
	}
	for _, line := range cells {
		for j, cell := range line {
			if w := utf8.RuneCountInString(cell) + 2; w > widths[j] {
				widths[j] = w
			}
		}
	}

	var sb strings.Builder
	writeDivider(&sb, widths, "┌", "┬", "┐")
	writeRow(&sb, widths, columns)
	writeDivider(&sb, widths, "├", "┼", "┤")
	for _, line := range cells {
		writeRow(&sb, widths, line)
	}
	writeDivider(&sb, widths, "└", "┴", "┘")

	return strings.TrimSuffix(sb.String(), "\n")
}

func writeDivider(sb *strings.Builder, widths []int, left, middle, right string) {
	sb.WriteString(left)
	for j, w := range widths {
		if j > 0 {
			sb.WriteString(middle)
		}
		sb.WriteString(strings.Repeat("─", w))
	}
	sb.WriteString(right)
	sb.WriteByte('\n')
}

func writeRow(sb *strings.Builder, widths []int, cells []string) {
	sb.WriteString("│")
	for j, w := range widths {
		if j > 0 {
			sb.WriteString("│")
		}
		cell := cells[j]
		pad := w - utf8.RuneCountInString(cell)
		left := pad / 2
		sb.WriteString(strings.Repeat(" ", left))
		sb.WriteString(cell)
		sb.WriteString(strings.Repeat(" ", pad-left))
	}
	sb.WriteString("│\n")
}
