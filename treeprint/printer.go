package treeprint

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/indexed/ostree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Row is a printable line of a tree rendering, describing one node.
type Row struct {
	Label   string // node key and annotations
	Depth   int    // 0 for the root
	Balance int    // AVL balance factor of the node
}

// Rows lays out a tree for printing, top to bottom, i.e. in reverse key order.
func Rows[K any](tree *ostree.Tree[K]) []Row {
	if tree == nil {
		return nil
	}
	rows := make([]Row, 0, tree.Len())
	tree.Walk(func(info ostree.NodeInfo[K]) bool {
		rows = append(rows, Row{
			Label:   fmt.Sprintf("%v  [w=%d n=%d Σ=%d]", info.Key, info.Weight, info.Count, info.Sum),
			Depth:   info.Depth,
			Balance: info.Balance,
		})
		return true
	})
	slices.Reverse(rows)
	return rows
}

// Printer outputs tree layouts to a console with a fixed width font.
type Printer struct {
	config Config
	colors map[int]*color.Color
}

var setupGraphemes sync.Once

// NewPrinter creates a new printer. If config is nil, default values are
// used. colors is a map from balance factors to colors, used for display.
// It may contain just a subset of balance factors, or be nil to select a
// default palette.
func NewPrinter(config *Config, colors map[int]*color.Color) *Printer {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	p := &Printer{config: config.normalized(), colors: colors}
	if p.colors == nil {
		p.colors = makeDefaultPalette()
	}
	return p
}

func makeDefaultPalette() map[int]*color.Color {
	palette := map[int]*color.Color{
		-1: color.New(color.FgYellow),
		0:  color.New(color.FgBlue),
		1:  color.New(color.FgRed),
	}
	return palette
}

// Fprint outputs rows to w.
func (p *Printer) Fprint(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		_, err := io.WriteString(w, "()\n")
		return err
	}
	for _, row := range rows {
		indent := strings.Repeat(" ", row.Depth*p.config.Indent)
		label := p.truncate(row.Label, p.config.LineWidth-len(indent))
		if _, err := io.WriteString(w, indent); err != nil {
			return err
		}
		if c, ok := p.colors[row.Balance]; ok && !p.config.Monochrome {
			if _, err := c.Fprint(w, label); err != nil {
				return err
			}
		} else if _, err := io.WriteString(w, label); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// truncate shortens s to at most width display positions, marking a cut
// with an ellipsis.
func (p *Printer) truncate(s string, width int) string {
	if width < 1 {
		width = 1
	}
	if p.width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		cut := string(runes) + "…"
		if p.width(cut) <= width {
			return cut
		}
	}
	return "…"
}

func (p *Printer) width(s string) int {
	return uax11.StringWidth(grapheme.StringFromString(s), p.config.Context)
}

// Fprint renders tree to w.
func Fprint[K any](w io.Writer, tree *ostree.Tree[K], config *Config) error {
	rows := Rows(tree)
	tracer().Debugf("treeprint: printing %d nodes", len(rows))
	return NewPrinter(config, nil).Fprint(w, rows)
}

// Print renders tree to stdout. If config is nil, a heuristic will create a
// config from the current terminal's properties.
func Print[K any](tree *ostree.Tree[K], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	return Fprint(os.Stdout, tree, config)
}
