// Package render formats query outcomes for the terminal with lipgloss.
// The core reports match spans as offsets; highlighting happens here.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/corey/fstack/internal/app"
	"github.com/corey/fstack/internal/domain/search"
	"github.com/corey/fstack/internal/ports"
)

// Renderer turns outcomes into display strings. With color disabled every
// style renders as plain text. Newlines stay outside Style.Render, which
// would otherwise pad multi-line input to a common width.
type Renderer struct {
	code      lipgloss.Style
	stack     lipgloss.Style
	highlight lipgloss.Style
	slots     lipgloss.Style
	labels    lipgloss.Style
	heading   lipgloss.Style
	accent    lipgloss.Style
	info      lipgloss.Style
	ok        lipgloss.Style
	warn      lipgloss.Style
	fail      lipgloss.Style
	dim       lipgloss.Style
}

// New returns a Renderer writing styles for w.
func New(w io.Writer, color bool) *Renderer {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		code:      r.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3")),
		stack:     r.NewStyle().Foreground(lipgloss.Color("3")).Underline(true),
		highlight: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true).Underline(true),
		slots:     r.NewStyle().Foreground(lipgloss.Color("5")),
		labels:    r.NewStyle().Foreground(lipgloss.Color("2")),
		heading:   r.NewStyle().Bold(true),
		accent:    r.NewStyle().Foreground(lipgloss.Color("11")),
		info:      r.NewStyle().Foreground(lipgloss.Color("12")),
		ok:        r.NewStyle().Foreground(lipgloss.Color("10")),
		warn:      r.NewStyle().Foreground(lipgloss.Color("3")),
		fail:      r.NewStyle().Foreground(lipgloss.Color("1")),
		dim:       r.NewStyle().Faint(true),
	}
}

// Span is a highlighted range of a stack.
type Span struct {
	Start, Length int
}

// Spans collects the spans of every match in r.
func Spans(r search.Result) []Span {
	spans := make([]Span, len(r.Matches))
	for i, m := range r.Matches {
		spans[i] = Span{Start: m.Start, Length: m.Length}
	}
	return spans
}

// Stack renders stk with every span highlighted. Overlapping spans merge.
// Out-of-range span parts are ignored.
func (r *Renderer) Stack(stk string, spans []Span) string {
	marked := make([]bool, len(stk))
	for _, s := range spans {
		for i := max(s.Start, 0); i < s.Start+s.Length && i < len(stk); i++ {
			marked[i] = true
		}
	}

	var sb strings.Builder
	for i := 0; i < len(stk); {
		j := i
		for j < len(stk) && marked[j] == marked[i] {
			j++
		}
		if marked[i] {
			sb.WriteString(r.highlight.Render(stk[i:j]))
		} else {
			sb.WriteString(r.stack.Render(stk[i:j]))
		}
		i = j
	}
	return sb.String()
}

// Results renders function search results:
//
//	Hits for 'Fi':
//
//		Type.: INFP
//		Stack: FiNeSiTe
//		│
//		└─ Cognitive function(s):
//		   Position 1 - Primary (Fi)
func (r *Renderer) Results(pattern string, results []search.Result) string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(r.heading.Render(fmt.Sprintf("Hits for '%s':", r.accent.Render(pattern))))
	sb.WriteString("\n\n")
	for _, res := range results {
		sb.WriteString(r.Result(res))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Result renders a single search result block.
func (r *Renderer) Result(res search.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\tType.: %s\n", r.code.Render(res.Code))
	fmt.Fprintf(&sb, "\tStack: %s\n", r.Stack(res.Stack, Spans(res)))
	fmt.Fprintf(&sb, "\t%s\n", r.dim.Render("│"))
	for _, m := range res.Matches {
		positions := make([]string, len(m.Slots))
		for i, s := range m.Slots {
			positions[i] = fmt.Sprint(int(s))
		}
		fmt.Fprintf(&sb, "\t%s\n", r.dim.Render("└─ Cognitive function(s):"))
		fmt.Fprintf(&sb, "\t   Position %s - %s\n",
			r.slots.Render(strings.Join(positions, ", ")),
			r.labels.Render(strings.Join(m.Labels, ", ")))
	}
	return sb.String()
}

// Lookup renders a direct code lookup.
func (r *Renderer) Lookup(code, stk string) string {
	return fmt.Sprintf("%s\n\n\tType.: %s\n\tStack: %s\n",
		r.ok.Render("Input is a type code."),
		r.code.Render(code),
		r.stack.Render(stk))
}

// Opposite renders an opposite-mode outcome. A flipped code missing from
// the table gets a warning and "???" as its stack.
func (r *Renderer) Opposite(op app.Opposite) string {
	var sb strings.Builder
	if !op.FlippedKnown {
		sb.WriteString(r.Warning(fmt.Sprintf("The flipped type %s is not in the table.", op.Flipped)))
	}
	flippedStack := op.FlippedStack
	if !op.FlippedKnown {
		flippedStack = "???"
	}
	sb.WriteString("\n")
	sb.WriteString(r.heading.Render("Opposite"))
	sb.WriteString("\n")
	sb.WriteString(r.info.Render("Type.....: ") + r.code.Render(op.Code) + r.info.Render(" → Stack: "+op.Stack) + "\n")
	sb.WriteString(r.info.Render("Opposite.: ") + r.code.Render(op.Flipped) + r.info.Render(" → Stack: "+flippedStack) + "\n")
	sb.WriteString(r.dim.Render(strings.Repeat("-", 64)))
	sb.WriteString("\n")
	return sb.String()
}

// Candidates renders the codes selected by a wildcard.
func (r *Renderer) Candidates(pattern string, codes []string) string {
	return fmt.Sprintf("%s [%s]\n",
		r.info.Render(fmt.Sprintf("Wildcard '%s' =>", pattern)),
		strings.Join(codes, ", "))
}

// Table renders every entry, one per line.
func (r *Renderer) Table(entries []ports.TableEntry) string {
	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "%s  %s\n", r.code.Render(e.Code), r.stack.Render(e.Stack))
	}
	return sb.String()
}

// Heading renders a bold line.
func (r *Renderer) Heading(msg string) string { return r.heading.Render(msg) + "\n" }

// Notice renders a neutral hint.
func (r *Renderer) Notice(msg string) string { return r.dim.Render(msg) + "\n" }

// Warning renders a non-fatal problem.
func (r *Renderer) Warning(msg string) string { return r.warn.Render(msg) + "\n" }

// Failure renders an empty or failed outcome.
func (r *Renderer) Failure(msg string) string { return r.fail.Render(msg) + "\n" }
