// Package render draws fields as text for the CLI: a debug grid with
// optional terminal colors, and several fields side by side.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/field"
	"github.com/vovakirdan/blockfall/internal/grid"
)

// colorStyles maps block colors to ANSI foreground styles.
var colorStyles = map[field.Color]lipgloss.Style{
	field.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	field.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	field.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	field.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
}

var (
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle = lipgloss.NewStyle().Bold(true)
	panelStyle = lipgloss.NewStyle().PaddingRight(2)
)

// Options controls the glyphs and coloring.
type Options struct {
	Color  bool
	Empty  string
	Filled string
}

// DefaultOptions uses the same glyphs as the grid debug output.
func DefaultOptions() Options {
	return Options{
		Color:  true,
		Empty:  grid.GlyphEmpty,
		Filled: grid.GlyphFilled,
	}
}

// Renderer turns fields into strings.
type Renderer struct {
	opts Options
}

// New creates a renderer. Blank glyphs fall back to the defaults.
func New(opts Options) *Renderer {
	def := DefaultOptions()
	if opts.Empty == "" {
		opts.Empty = def.Empty
	}
	if opts.Filled == "" {
		opts.Filled = def.Filled
	}
	return &Renderer{opts: opts}
}

// Field renders f with the grid debug layout, coloring blocks by their
// color when enabled. Active blocks are drawn bold.
func (r *Renderer) Field(f *field.Field) string {
	return grid.Format(f.Grid, r.glyph)
}

func (r *Renderer) glyph(c field.Cell) string {
	if !c.Filled {
		if r.opts.Color {
			return emptyStyle.Render(r.opts.Empty)
		}
		return r.opts.Empty
	}
	if !r.opts.Color {
		return r.opts.Filled
	}
	style := colorStyles[c.Value.Color]
	if c.Value.Active {
		style = style.Bold(true)
	}
	return style.Render(r.opts.Filled)
}

// Status is a one-line summary of a field.
func Status(f *field.Field) string {
	return fmt.Sprintf("height=%d active=%d phase=%s", f.ContentHeight(), f.ActiveCount(), f.Phase())
}

// Panel is one titled field in a multi-field layout.
type Panel struct {
	Title string
	Field *field.Field
}

// Panels renders each panel under its title and joins them horizontally.
func (r *Renderer) Panels(panels []Panel) string {
	cols := make([]string, 0, len(panels))
	for _, p := range panels {
		body := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(p.Title),
			strings.TrimSuffix(r.Field(p.Field), "\n"),
			Status(p.Field),
		)
		cols = append(cols, panelStyle.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// Letters renders f with one character per cell: '.' for empty, the color
// letter for locked blocks and its lowercase form for active ones. Rows are
// separated by newlines.
func Letters(f *field.Field) string {
	var sb strings.Builder
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			c := f.At(x, y)
			switch {
			case !c.Filled:
				sb.WriteByte('.')
			case c.Value.Active:
				sb.WriteString(strings.ToLower(string(c.Value.Color.Char())))
			default:
				sb.WriteRune(c.Value.Color.Char())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
