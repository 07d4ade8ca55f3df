package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/minhyannv/baby-claude/pkg/transcript"
)

func TestTruncate(t *testing.T) {
	exact := strings.Repeat("a", 100)
	long := strings.Repeat("b", 101)

	assert.Equal(t, "short", Truncate("short", 100))
	assert.Equal(t, exact, Truncate(exact, 100))
	assert.Equal(t, strings.Repeat("b", 100)+"...", Truncate(long, 100))
	assert.Equal(t, "", Truncate("", 100))
}

func TestTruncateCountsCharactersNotBytes(t *testing.T) {
	s := strings.Repeat("é", 100)
	assert.Equal(t, s, Truncate(s, 100))
	assert.Equal(t, strings.Repeat("é", 100)+"...", Truncate(s+"é", 100))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:00:00", FormatDuration(0))
	assert.Equal(t, "0:00:59", FormatDuration(59*time.Second+900*time.Millisecond))
	assert.Equal(t, "1:02:03", FormatDuration(time.Hour+2*time.Minute+3*time.Second))
	assert.Equal(t, "0:00:00", FormatDuration(-time.Second))
}

func TestHistoryTruncatesLongFields(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)

	long := strings.Repeat("x", 150)
	p.History([]transcript.Exchange{
		{Timestamp: time.Date(2024, 1, 1, 12, 34, 56, 0, time.UTC), User: long, Claude: "short reply"},
	})

	out := buf.String()
	assert.Contains(t, out, "[12:34:56] Exchange 1:")
	assert.Contains(t, out, "You: "+strings.Repeat("x", 100)+"...\n")
	assert.NotContains(t, out, strings.Repeat("x", 101))
	assert.Contains(t, out, "Claude: short reply\n")
}

func TestHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, true).History(nil)
	assert.Contains(t, buf.String(), "No conversation history yet!")
}

func TestHelpListsEveryCommand(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, true).Help()
	for _, name := range []string{"help", "history", "clear", "save", "stats", "quit"} {
		assert.Contains(t, buf.String(), name)
	}
}

func TestPlainResponseIsUnstyled(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)
	p.Response("**4**")
	p.ErrorReply(errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "Claude:\n**4**\n")
	assert.Contains(t, out, "Error communicating with Claude: boom")
	assert.NotContains(t, out, "\x1b[")
}

func TestPlainThinkingIsSilent(t *testing.T) {
	var buf bytes.Buffer
	done := NewPrinter(&buf, true).Thinking()
	done()
	assert.Empty(t, buf.String())
}

func TestBannerShowsStartTime(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, true).Banner(time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC))
	assert.Contains(t, buf.String(), "Session started: 2024-03-04 05:06:07")
}
