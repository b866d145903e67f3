// Package render draws the character grid and the round's answers.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog/log"

	"github.com/f3rmion/fourzi/internal/config"
	"github.com/f3rmion/fourzi/internal/fourzi"
	"github.com/f3rmion/fourzi/internal/pinyin"
)

// Renderer writes a grid for display.
type Renderer interface {
	Render(w io.Writer, grid fourzi.Grid) error
}

// Options configures New.
type Options struct {
	Style  string     // config.StylePlain, StyleTable or StyleBig
	Pinyin bool       // annotate cells with readings
	Font   *BlockFont // glyphs for StyleBig; nil falls back to StyleTable
}

// New returns the renderer for opts.Style.
func New(opts Options) (Renderer, error) {
	var ann *pinyin.Annotator
	if opts.Pinyin {
		ann = pinyin.NewAnnotator()
	}

	switch opts.Style {
	case config.StylePlain:
		return &Plain{annotator: ann}, nil
	case config.StyleTable, "":
		return &Table{annotator: ann}, nil
	case config.StyleBig:
		if opts.Font == nil {
			log.Warn().Msg("no CJK font available, falling back to table style")
			return &Table{annotator: ann}, nil
		}
		return &Big{font: opts.Font, annotator: ann, cols: 8, rows: 4}, nil
	default:
		return nil, fmt.Errorf("unknown render style %q", opts.Style)
	}
}

// Plain writes one row per line with cells separated by a space.
type Plain struct {
	annotator *pinyin.Annotator
}

// Render implements Renderer.
func (p *Plain) Render(w io.Writer, grid fourzi.Grid) error {
	for _, row := range grid {
		if _, err := fmt.Fprintln(w, strings.Join(row, " ")); err != nil {
			return err
		}
		if p.annotator == nil {
			continue
		}

		readings := make([]string, len(row))
		for i, c := range row {
			readings[i] = p.annotator.Reading(c)
		}
		if _, err := fmt.Fprintln(w, strings.Join(readings, " ")); err != nil {
			return err
		}
	}
	return nil
}

// Table draws a bordered grid with 1-based row and column headers.
type Table struct {
	annotator *pinyin.Annotator
}

// Render implements Renderer.
func (t *Table) Render(w io.Writer, grid fourzi.Grid) error {
	if grid.Rows() == 0 {
		_, err := fmt.Fprintln(w, GridStyle.Render("(empty grid)"))
		return err
	}

	width := t.cellWidth(grid)
	labelWidth := len(strconv.Itoa(grid.Rows())) + 1

	header := []string{HeaderStyle.Width(labelWidth).Render("")}
	for c := 1; c <= grid.Cols(); c++ {
		header = append(header, HeaderStyle.Width(width).Render(strconv.Itoa(c)))
	}

	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}
	for r, row := range grid {
		cells := []string{HeaderStyle.Width(labelWidth).Render(strconv.Itoa(r + 1))}
		for _, c := range row {
			cells = append(cells, t.cell(c, width))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	_, err := fmt.Fprintln(w, GridStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	return err
}

func (t *Table) cell(char string, width int) string {
	top := CellStyle.Width(width).Render(char)
	if t.annotator == nil {
		return top
	}
	return lipgloss.JoinVertical(lipgloss.Center, top, CellPinyinStyle.Width(width).Render(t.annotator.Reading(char)))
}

// cellWidth is the widest character or reading plus one column of padding
// on each side.
func (t *Table) cellWidth(grid fourzi.Grid) int {
	widest := 2
	for _, row := range grid {
		for _, c := range row {
			widest = max(widest, runewidth.StringWidth(c))
			if t.annotator != nil {
				widest = max(widest, runewidth.StringWidth(t.annotator.Reading(c)))
			}
		}
	}
	return widest + 2
}

// Answers lists the phrases hidden in round with their scores. ann may be nil.
func Answers(w io.Writer, round fourzi.Round, ann *pinyin.Annotator) error {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("Hidden phrases"))
	sb.WriteString("\n")
	for i, e := range round.Selected {
		sb.WriteString(fmt.Sprintf("%2d. %s", i+1, PhraseStyle.Render(e.Phrase)))
		if ann != nil {
			sb.WriteString("  " + PinyinStyle.Render(ann.Phrase(e.Phrase)))
		}
		sb.WriteString("  " + ScoreStyle.Render(strconv.Itoa(e.Score)))
		sb.WriteString("\n")
	}
	sb.WriteString(ScoreStyle.Render(fmt.Sprintf("Total score: %d", round.TotalScore())))
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
