package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/redblack"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for printing trees.
type Config struct {
	LineWidth int            // labels are clipped to fit, measured in fixed width positions
	Indent    int            // positions per tree level
	Colors    bool           // print nodes in color
	Context   *uax11.Context // for measuring display width of labels
}

// Defaults for zero config values.
const (
	DefaultLineWidth = 65
	DefaultIndent    = 4
)

func (config *Config) normalized() *Config {
	c := *config
	if c.LineWidth <= 0 {
		c.LineWidth = DefaultLineWidth
	}
	if c.Indent <= 0 {
		c.Indent = DefaultIndent
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	return &c
}

var setupGraphemes sync.Once

// Print outputs tree to w.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
func Print[K any](tree *redblack.Tree[K], w io.Writer, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	config = config.normalized()
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	p := printer[K]{
		w:       bufio.NewWriter(w),
		config:  config,
		palette: makePalette(config.Colors),
	}
	if tree.IsEmpty() {
		io.WriteString(p.w, "(empty)\n")
	} else {
		p.node(tree.Root(), 0)
	}
	return p.w.Flush()
}

type printer[K any] struct {
	w       *bufio.Writer
	config  *Config
	palette map[redblack.Color]*color.Color
}

func (p *printer[K]) node(n *redblack.Node[K], depth int) {
	if n == nil {
		return
	}
	p.node(n.Right(), depth+1)
	indent := depth * p.config.Indent
	p.w.WriteString(strings.Repeat(" ", indent))
	label := p.label(n, p.config.LineWidth-indent)
	if c, ok := p.palette[n.Color()]; ok {
		c.Fprint(p.w, label)
	} else {
		p.w.WriteString(label)
	}
	p.w.WriteByte('\n')
	p.node(n.Left(), depth+1)
}

// label formats n as "R key" or "B key", clipped to a display width of at
// most space positions.
func (p *printer[K]) label(n *redblack.Node[K], space int) string {
	mark := "B"
	if n.IsRed() {
		mark = "R"
	}
	label := fmt.Sprintf("%s %v", mark, n.Key())
	if p.width(label) <= space {
		return label
	}
	const ellipsis = "…"
	prefix := fmt.Sprintf("%s ", mark)
	key := grapheme.StringFromString(label[len(prefix):])
	for keep := key.Len() - 1; keep > 0; keep-- { // clip on grapheme boundaries
		var sb strings.Builder
		sb.WriteString(prefix)
		for i := 0; i < keep; i++ {
			sb.WriteString(key.Nth(i))
		}
		sb.WriteString(ellipsis)
		if clipped := sb.String(); p.width(clipped) <= space {
			return clipped
		}
	}
	T().P("console", "label").Debugf("no room for label %q", label)
	return mark
}

func (p *printer[K]) width(s string) int {
	return uax11.StringWidth(grapheme.StringFromString(s), p.config.Context)
}

func makePalette(colors bool) map[redblack.Color]*color.Color {
	if !colors {
		return nil
	}
	palette := map[redblack.Color]*color.Color{
		redblack.Red:   color.New(color.FgRed),
		redblack.Black: color.New(color.Bold),
	}
	for _, c := range palette {
		c.EnableColor()
	}
	return palette
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a printing Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Colors are switched on
// for terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{Indent: DefaultIndent}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colors = true
		w, _, err := term.GetSize(fd)
		if err != nil || w <= 10 {
			config.LineWidth = DefaultLineWidth
		} else {
			config.LineWidth = w - 1
		}
	} else {
		config.LineWidth = DefaultLineWidth
	}
	config.Context = uax11.ContextFromEnvironment()
	T().P("console", "terminal").Infof("setting line length to %d en", config.LineWidth)
	return config
}
