package media

import (
	"fmt"
	"strconv"

	"github.com/bilidl/bilidl/color"
	"github.com/bilidl/bilidl/style"
	"github.com/bilidl/bilidl/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/reflow/truncate"
	"github.com/samber/lo"
)

// noteWidth bounds the note column; bilibili notes can be long marketing strings.
const noteWidth = 12

var tableHeaders = []string{"Idx", "format_id", "note", "res", "fps", "size", "type"}

// Table renders the formats as an indexed table. Indices are 1-based and match Resolve.
func Table(shown []Format) string {
	rows := lo.Map(shown, func(f Format, i int) []string {
		return []string{
			strconv.Itoa(i + 1),
			f.ID,
			truncate.StringWithTail(f.Note, noteWidth, "…"),
			f.Resolution(),
			fps(f.FPS),
			util.HumanSize(f.Size()),
			f.Kind(),
		}
	})

	header := style.New().Bold(true).Foreground(color.Purple).Padding(0, 1)
	cell := style.New().Padding(0, 1)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(style.New().Foreground(color.Black)).
		BorderColumn(false).
		Headers(tableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header.Align(lipgloss.Right)
			}
			if col == 0 {
				return cell.Foreground(color.Yellow).Align(lipgloss.Right)
			}
			return cell.Align(lipgloss.Right)
		}).
		Render()
}

func fps(v float64) string {
	if v <= 0 {
		return ""
	}
	if v == float64(int(v)) {
		return strconv.Itoa(int(v))
	}
	return fmt.Sprintf("%.2f", v)
}
