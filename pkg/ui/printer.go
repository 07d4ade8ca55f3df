// Package ui renders session output for the terminal.
package ui

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/minhyannv/baby-claude/pkg/transcript"
)

// HistoryPreviewLen is the number of characters of each field shown by history.
const HistoryPreviewLen = 100

const (
	ellipsis  = "..."
	wordWrap  = 100
	thinking  = "🤔 Claude is thinking..."
	farewell  = "👋 Goodbye! Thanks for chatting with Baby Claude!"
	bannerTop = "🤖 Baby Claude - Your Personal AI Assistant"
	bannerSub = "Powered by Anthropic Claude"
)

// Printer writes styled session output to a writer.
// In plain mode no colour, markdown rendering, or progress indicator is used.
type Printer struct {
	out   io.Writer
	plain bool
	st    styles
	md    *glamour.TermRenderer
}

// NewPrinter builds a Printer for out. A nil out discards everything.
func NewPrinter(out io.Writer, plain bool) *Printer {
	if out == nil {
		out = io.Discard
	}
	p := &Printer{
		out:   out,
		plain: plain,
		st:    newStyles(lipgloss.NewRenderer(out)),
	}
	if !plain {
		// Falls back to raw text when the renderer cannot be built.
		p.md, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wordWrap),
		)
	}
	return p
}

func (p *Printer) render(s lipgloss.Style, text string) string {
	if p.plain {
		return text
	}
	return s.Render(text)
}

func (p *Printer) println(s lipgloss.Style, text string) {
	_, _ = fmt.Fprintln(p.out, p.render(s, text))
}

// Banner prints the welcome header and the session start time.
func (p *Printer) Banner(start time.Time) {
	if p.plain {
		_, _ = fmt.Fprintf(p.out, "=== %s ===\n%s\n", bannerTop, bannerSub)
	} else {
		_, _ = fmt.Fprintln(p.out, p.st.banner.Render(bannerTop+"\n"+bannerSub))
	}
	_, _ = fmt.Fprintln(p.out)
	p.println(p.st.info, "✨ Welcome! I'm here to help you with anything.")
	p.println(p.st.warning, "💡 Tips: Type 'help' for commands, 'quit' to exit")
	p.println(p.st.ok, "📅 Session started: "+start.Format("2006-01-02 15:04:05"))
}

// Prompt prints the input prompt without a trailing newline.
func (p *Printer) Prompt() {
	_, _ = fmt.Fprint(p.out, "\n"+p.render(p.st.user, "👤 You: "))
}

// Help prints the command list.
func (p *Printer) Help() {
	_, _ = fmt.Fprintln(p.out)
	p.println(p.st.header, "🔧 Available Commands:")
	rows := []struct{ name, desc string }{
		{"help", "Show this help menu"},
		{"history", "Show conversation history"},
		{"clear", "Clear conversation history"},
		{"save", "Save conversation to file"},
		{"stats", "Show session statistics"},
		{"quit", "Exit Baby Claude"},
	}
	for _, row := range rows {
		_, _ = fmt.Fprintf(p.out, "%s - %s\n", p.render(p.st.command, fmt.Sprintf("• %-8s", row.name)), row.desc)
	}
	_, _ = fmt.Fprintln(p.out)
	p.println(p.st.info, "🌟 Just type your question and I'll help!")
}

// History prints every exchange with both fields cut to HistoryPreviewLen characters.
func (p *Printer) History(exchanges []transcript.Exchange) {
	if len(exchanges) == 0 {
		p.println(p.st.warning, "📜 No conversation history yet!")
		return
	}
	_, _ = fmt.Fprintln(p.out)
	p.println(p.st.header, "📜 Conversation History:")
	for i, e := range exchanges {
		_, _ = fmt.Fprintln(p.out)
		p.println(p.st.system, fmt.Sprintf("[%s] Exchange %d:", e.Timestamp.Format("15:04:05"), i+1))
		p.println(p.st.user, "👤 You: "+Truncate(e.User, HistoryPreviewLen))
		p.println(p.st.claude, "🤖 Claude: "+Truncate(e.Claude, HistoryPreviewLen))
	}
}

// Cleared confirms that the transcript was emptied.
func (p *Printer) Cleared() {
	p.println(p.st.ok, "🧹 Conversation history cleared!")
}

// Saved reports the path of a written snapshot.
func (p *Printer) Saved(path string) {
	p.println(p.st.ok, "💾 Conversation saved to: "+path)
}

// NothingToSave warns that save was requested on an empty transcript.
func (p *Printer) NothingToSave() {
	p.println(p.st.warning, "📝 No conversation to save yet!")
}

// SaveFailed reports a failed save.
func (p *Printer) SaveFailed(err error) {
	p.println(p.st.fail, fmt.Sprintf("❌ Error saving conversation: %v", err))
}

// Stats prints session statistics.
func (p *Printer) Stats(elapsed time.Duration, exchanges int, start time.Time, model string) {
	_, _ = fmt.Fprintln(p.out)
	p.println(p.st.header, "📊 Session Statistics:")
	p.println(p.st.ok, "⏱️  Duration: "+FormatDuration(elapsed))
	p.println(p.st.ok, fmt.Sprintf("💬 Messages exchanged: %d", exchanges))
	p.println(p.st.ok, "🚀 Started: "+start.Format("15:04:05"))
	p.println(p.st.ok, "🧠 Model: "+model)
}

// Thinking shows a progress line and returns a func that erases it.
func (p *Printer) Thinking() func() {
	if p.plain {
		return func() {}
	}
	_, _ = fmt.Fprint(p.out, p.render(p.st.claude, thinking))
	width := lipgloss.Width(thinking)
	return func() {
		_, _ = fmt.Fprint(p.out, "\r"+strings.Repeat(" ", width)+"\r")
	}
}

// Question echoes a one-shot prompt.
func (p *Printer) Question(prompt string) {
	p.println(p.st.user, "👤 Question: "+prompt)
}

// Response prints an assistant reply, rendering markdown when enabled.
func (p *Printer) Response(text string) {
	_, _ = fmt.Fprintln(p.out)
	p.println(p.st.label, "🤖 Claude:")
	if p.md != nil {
		if rendered, err := p.md.Render(text); err == nil {
			_, _ = fmt.Fprint(p.out, rendered)
			return
		}
	}
	p.println(p.st.claude, text)
}

// ErrorReply prints a failed completion in place of the assistant reply.
func (p *Printer) ErrorReply(err error) {
	_, _ = fmt.Fprintln(p.out)
	p.println(p.st.label, "🤖 Claude:")
	p.println(p.st.fail, fmt.Sprintf("❌ Error communicating with Claude: %v", err))
}

// Goodbye prints the farewell line.
func (p *Printer) Goodbye() {
	_, _ = fmt.Fprintln(p.out)
	p.println(p.st.info, farewell)
}

// Failure prints a diagnostic for an error that ended the session.
func (p *Printer) Failure(err error) {
	_, _ = fmt.Fprintln(p.out)
	p.println(p.st.fail, fmt.Sprintf("❌ An error occurred: %v", err))
}

// Truncate cuts s to n characters and appends "..." when anything was cut.
func Truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + ellipsis
}

// FormatDuration renders d as H:MM:SS, dropping fractions of a second.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total/60)%60, total%60)
}
