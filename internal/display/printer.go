package display

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/matsen/devvault/internal/snippet"
	"github.com/matsen/devvault/internal/stats"
)

// Layout constants for terminal output.
const (
	DividerWidth  = 60
	BarWidth      = 40 // Longest language bar in stats
	LanguageWidth = 12 // Language column in stats
	TagWidth      = 20 // Tag column in stats
)

// Printer writes formatted output to w.
type Printer struct {
	w  io.Writer
	st styles
}

// NewPrinter returns a Printer styled for w according to mode.
func NewPrinter(w io.Writer, mode ColorMode) *Printer {
	return &Printer{w: w, st: newStyles(NewRenderer(w, mode))}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// c styles each line of text separately so lipgloss never pads lines to a
// common width.
func (p *Printer) c(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

func (p *Printer) println(s string) {
	fmt.Fprintln(p.w, s)
}

// Label formats an interactive prompt label.
func (p *Printer) Label(text string) string {
	return p.c(p.st.green, "  "+text)
}

// Question formats a yes/no confirmation prompt.
func (p *Printer) Question(text string) string {
	return p.c(p.st.yellow, "  "+text)
}

// Hint prints a dimmed instruction line.
func (p *Printer) Hint(text string) {
	p.println(p.c(p.st.dim, "  "+text))
}

// Heading prints a bold section heading surrounded by blank lines.
func (p *Printer) Heading(text string) {
	p.println(p.c(p.st.bold, "\n  ✦ "+text+"\n"))
}

// Success prints a confirmation message.
func (p *Printer) Success(text string) {
	p.println(p.c(p.st.green, "\n  ✔ "+text+"\n"))
}

// Warn prints a notice such as an empty vault or no results.
func (p *Printer) Warn(text string) {
	p.println(p.c(p.st.yellow, "\n  "+text+"\n"))
}

// Error prints a user-facing error such as a validation failure.
func (p *Printer) Error(text string) {
	p.println(p.c(p.st.red, "\n  "+text+"\n"))
}

// Muted prints a dimmed message surrounded by blank lines.
func (p *Printer) Muted(text string) {
	p.println(p.c(p.st.dim, "\n  "+text+"\n"))
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	p.println("")
}

// Divider prints a horizontal rule made of char.
func (p *Printer) Divider(char string) {
	p.println(p.c(p.st.dim, strings.Repeat(char, DividerWidth)))
}

// Snippet prints one snippet. The code body is included only when showCode is set.
func (p *Printer) Snippet(s snippet.Snippet, showCode bool) {
	p.Divider("─")

	fmt.Fprintf(p.w, "  %s  %s   %s\n",
		p.c(p.st.bold, fmt.Sprintf("[%d]", s.ID)),
		p.c(p.st.title, s.Title),
		p.c(p.st.green, s.Language))

	if len(s.Tags) > 0 {
		tags := make([]string, len(s.Tags))
		for i, t := range s.Tags {
			tags[i] = p.c(p.st.yellow, "#"+t)
		}
		fmt.Fprintf(p.w, "  %s\n", strings.Join(tags, "  "))
	}

	fmt.Fprintf(p.w, "  %s\n", p.c(p.st.dim, "Added: "+s.CreatedAt))

	if s.Description != "" {
		fmt.Fprintf(p.w, "  %s\n", p.c(p.st.dim, s.Description))
	}

	if showCode {
		p.Divider("·")
		for _, line := range s.CodeLines() {
			fmt.Fprintf(p.w, "  %s\n", p.c(p.st.cyan, line))
		}
	}

	p.Divider("─")
}

// SnippetList prints a heading followed by every snippet in summary form.
func (p *Printer) SnippetList(heading string, snippets []snippet.Snippet) {
	p.println(p.c(p.st.bold, "\n  ✦ "+heading+"\n"))
	for _, s := range snippets {
		p.Snippet(s, false)
	}
	p.Blank()
}

// Stats prints the aggregate view with a bar per language.
func (p *Printer) Stats(sum stats.Summary) {
	p.Heading("DevVault Stats")
	p.Divider("─")
	fmt.Fprintf(p.w, "  Total snippets : %s\n", p.c(p.st.cyan, fmt.Sprint(sum.Total)))
	fmt.Fprintf(p.w, "  Languages used : %s\n", p.c(p.st.cyan, fmt.Sprint(sum.DistinctLanguages())))
	p.Blank()

	p.println(p.c(p.st.bold, "  Languages:"))
	maxCount := sum.MaxLanguageCount()
	for _, l := range sum.Languages {
		bar := strings.Repeat("█", BarLength(l.Count, maxCount, BarWidth))
		fmt.Fprintf(p.w, "    %s %s  %d\n", padRight(l.Label, LanguageWidth), p.c(p.st.green, bar), l.Count)
	}

	if len(sum.TopTags) > 0 {
		p.Blank()
		p.println(p.c(p.st.bold, "  Top tags:"))
		for _, t := range sum.TopTags {
			fmt.Fprintf(p.w, "    %s %d snippet(s)\n", p.c(p.st.yellow, padRight("#"+t.Label, TagWidth)), t.Count)
		}
	}

	p.Divider("─")
	p.Blank()
}

// Banner prints the DevVault logo.
func (p *Printer) Banner(version string) {
	logo := []string{
		"  ██████╗ ███████╗██╗   ██╗██╗   ██╗ █████╗ ██╗   ██╗██╗  ████████╗",
		"  ██╔══██╗██╔════╝██║   ██║██║   ██║██╔══██╗██║   ██║██║  ╚══██╔══╝",
		"  ██║  ██║█████╗  ██║   ██║██║   ██║███████║██║   ██║██║     ██║   ",
		"  ██║  ██║██╔══╝  ╚██╗ ██╔╝╚██╗ ██╔╝██╔══██║██║   ██║██║     ██║   ",
		"  ██████╔╝███████╗ ╚████╔╝  ╚████╔╝ ██║  ██║╚██████╔╝███████╗██║   ",
		"  ╚═════╝ ╚══════╝  ╚═══╝    ╚═══╝  ╚═╝  ╚═╝ ╚═════╝ ╚══════╝╚═╝   ",
	}
	p.Blank()
	for i, line := range logo {
		if i == 0 {
			p.println(p.c(p.st.logo, line))
		} else {
			p.println(p.c(p.st.cyan, line))
		}
	}
	p.println(p.c(p.st.dim, "    Your personal code snippet vault  •  "+version))
	p.Blank()
}

// BarLength returns how many blocks to draw for count. One block per
// snippet until maxCount exceeds width, then scaled to width, never below 1.
func BarLength(count, maxCount, width int) int {
	if count <= 0 {
		return 0
	}
	if maxCount <= width {
		return count
	}
	n := (count*width + maxCount/2) / maxCount
	if n < 1 {
		n = 1
	}
	return n
}

// padRight pads a string with spaces on the right, counting runes.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
