package view

import (
	"github.com/mattn/go-runewidth"

	"github.com/Iron-Ham/custsearch/internal/util"
)

// Horizontal cell padding applied by the table styles (one column each side).
const cellPadding = 2

// fitLine truncates a rendered line to the terminal width. Width <= 0 leaves
// the line untouched.
func fitLine(line string, width int) string {
	if width <= 0 {
		return line
	}
	return util.TruncateANSI(line, width)
}

// availableWidth returns the columns left for cell content once borders and
// padding are accounted for. 0 means unbounded.
func availableWidth(termWidth, cols int) int {
	if termWidth <= 0 {
		return 0
	}
	return max(termWidth-(cols+1)-cols*cellPadding, cols)
}

// naturalWidths returns, per column, the widest of the header and every cell.
func naturalWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for j, h := range headers {
		widths[j] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for j, cell := range row {
			if j < len(widths) {
				widths[j] = max(widths[j], runewidth.StringWidth(cell))
			}
		}
	}
	return widths
}

// fitColumns shrinks natural column widths to fit avail. Columns narrower
// than an even share keep their natural width; the rest split what remains.
// avail <= 0 returns natural unchanged.
func fitColumns(natural []int, avail int) []int {
	widths := make([]int, len(natural))
	copy(widths, natural)
	if avail <= 0 || len(natural) == 0 {
		return widths
	}

	total := 0
	for _, w := range natural {
		total += w
	}
	if total <= avail {
		return widths
	}

	fixed := make([]bool, len(natural))
	remaining := avail
	open := len(natural)
	for changed := true; changed && open > 0; {
		changed = false
		share := remaining / open
		for j, w := range natural {
			if !fixed[j] && w <= share {
				fixed[j] = true
				remaining -= w
				open--
				changed = true
			}
		}
	}

	if open == 0 {
		return widths
	}
	share, extra := remaining/open, remaining%open
	for j := range widths {
		if fixed[j] {
			continue
		}
		widths[j] = share
		if extra > 0 {
			widths[j]++
			extra--
		}
		widths[j] = max(widths[j], 1)
	}
	return widths
}
