package stats

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tokfreq/internal/model"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

// RenderTop writes the first n ranked entries as a table with each token's
// share of total and the count Zipf's law predicts from the top entry.
func RenderTop(w io.Writer, entries []model.Entry, total, n int, useColor bool) error {
	if n <= 0 {
		return nil
	}
	if n > len(entries) {
		n = len(entries)
	}

	title := fmt.Sprintf("Top %d of %d types (%d tokens)", n, len(entries), total)
	if useColor {
		title = titleStyle.Render(title)
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	top := float64(entries[0].Count)
	rows := make([][]string, 0, n)
	for i, e := range entries[:n] {
		rank := i + 1
		rows = append(rows, []string{
			strconv.Itoa(rank),
			e.Token,
			strconv.FormatUint(uint64(e.Count), 10),
			formatShare(e.Count, total),
			strconv.FormatFloat(top/float64(rank), 'f', 1, 64),
		})
	}
	headers := []string{"Rank", "Token", "Count", "Share", "Zipf"}
	for _, line := range formatTable(headers, rows, map[int]bool{0: true, 2: true, 3: true, 4: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatShare(count uint32, total int) string {
	if total <= 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(count)*100/float64(total))
}
