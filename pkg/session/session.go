// Package session runs the interactive chat loop and the one-shot mode.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/minhyannv/baby-claude/pkg/completion"
	loggerpkg "github.com/minhyannv/baby-claude/pkg/logger"
	"github.com/minhyannv/baby-claude/pkg/transcript"
	"github.com/minhyannv/baby-claude/pkg/ui"
)

const maxLineBytes = 1024 * 1024

// Metadata is fixed at startup and read-only afterwards.
type Metadata struct {
	ID        string
	Start     time.Time
	Model     string
	MaxTokens int
}

// Stats is a point-in-time view of the session.
type Stats struct {
	Elapsed   time.Duration
	Exchanges int
	Start     time.Time
	Model     string
}

// Session owns the transcript and lifecycle of one chat session.
type Session struct {
	meta         Metadata
	store        *transcript.Store
	completer    completion.Completer
	printer      *ui.Printer
	now          func() time.Time
	saveDir      string
	systemPrompt string
	lastElapsed  time.Duration

	logger  loggerpkg.Logger
	verbose bool
}

// New creates a session that sends prompts to completer using model and maxTokens.
func New(completer completion.Completer, model string, maxTokens int, opts ...Option) (*Session, error) {
	if completer == nil {
		return nil, errors.New("completer is required")
	}
	model = strings.TrimSpace(model)
	if model == "" {
		return nil, errors.New("model is required")
	}
	if maxTokens <= 0 {
		return nil, errors.New("max tokens must be positive")
	}

	deps := sessionDeps{logger: loggerpkg.NopLogger{}, now: time.Now, saveDir: "."}
	for _, opt := range opts {
		if opt != nil {
			opt(&deps)
		}
	}
	if deps.printer == nil {
		deps.printer = ui.NewPrinter(os.Stdout, false)
	}
	if deps.now == nil {
		deps.now = time.Now
	}

	s := &Session{
		meta: Metadata{
			ID:        uuid.NewString(),
			Start:     deps.now(),
			Model:     model,
			MaxTokens: maxTokens,
		},
		store:        transcript.NewStore(),
		completer:    completer,
		printer:      deps.printer,
		now:          deps.now,
		saveDir:      deps.saveDir,
		systemPrompt: deps.systemPrompt,
		logger:       deps.logger,
		verbose:      deps.verbose,
	}
	loggerpkg.Debug(s.verbose, s.logger, "session init", map[string]any{
		"session_id": s.meta.ID,
		"model":      s.meta.Model,
		"max_tokens": s.meta.MaxTokens,
		"save_dir":   s.saveDir,
	})
	return s, nil
}

// Metadata returns the session metadata.
func (s *Session) Metadata() Metadata {
	return s.meta
}

// Ask sends prompt as a single stateless request. On success the exchange is
// appended to the transcript and returned; failures are never recorded.
func (s *Session) Ask(ctx context.Context, prompt string) (transcript.Exchange, error) {
	reply, err := s.completer.Complete(ctx, completion.Request{
		Prompt:    prompt,
		Model:     s.meta.Model,
		MaxTokens: s.meta.MaxTokens,
		System:    s.systemPrompt,
	})
	if err != nil {
		return transcript.Exchange{}, err
	}

	e := transcript.Exchange{Timestamp: s.now(), User: prompt, Claude: reply}
	s.store.Append(e)
	return e, nil
}

// respond runs one prompt through Ask and prints the reply or the error in its place.
func (s *Session) respond(ctx context.Context, prompt string) error {
	done := s.printer.Thinking()
	e, err := s.Ask(ctx, prompt)
	done()
	if err != nil {
		loggerpkg.Debug(s.verbose, s.logger, "exchange failed", map[string]any{
			"error": err.Error(),
		})
		return err
	}
	s.printer.Response(e.Claude)
	return nil
}

// Dispatch runs input if it is a command keyword. handled is false for
// anything that should be treated as a prompt; quit asks the loop to stop.
func (s *Session) Dispatch(input string) (handled, quit bool) {
	cmd, ok := ParseCommand(input)
	if !ok {
		return false, false
	}
	loggerpkg.Debug(s.verbose, s.logger, "command", map[string]any{"name": cmd.String()})

	switch cmd {
	case CommandHelp:
		s.printer.Help()
	case CommandHistory:
		s.printer.History(s.store.All())
	case CommandClear:
		s.store.Clear()
		s.printer.Cleared()
	case CommandSave:
		s.saveAndReport()
	case CommandStats:
		st := s.Stats()
		s.printer.Stats(st.Elapsed, st.Exchanges, st.Start, st.Model)
	case CommandQuit:
		s.printer.Goodbye()
		return true, true
	}
	return true, false
}

// Save writes the current transcript to the save directory.
// It returns transcript.ErrEmpty when there is nothing to write.
func (s *Session) Save() (string, error) {
	return transcript.Save(s.saveDir, transcript.Snapshot{
		SessionID:    s.meta.ID,
		SessionStart: s.meta.Start,
		SessionEnd:   s.now(),
		Model:        s.meta.Model,
		Messages:     s.store.All(),
	})
}

func (s *Session) saveAndReport() {
	path, err := s.Save()
	switch {
	case errors.Is(err, transcript.ErrEmpty):
		s.printer.NothingToSave()
	case err != nil:
		loggerpkg.Error(s.logger, "save failed", map[string]any{"error": err.Error()})
		s.printer.SaveFailed(err)
	default:
		loggerpkg.Debug(s.verbose, s.logger, "transcript saved", map[string]any{
			"path":      path,
			"exchanges": s.store.Len(),
		})
		s.printer.Saved(path)
	}
}

// Stats reports elapsed time and exchange count. Elapsed never decreases
// between calls, even if the clock steps backwards.
func (s *Session) Stats() Stats {
	elapsed := s.now().Sub(s.meta.Start)
	if elapsed < s.lastElapsed {
		elapsed = s.lastElapsed
	}
	s.lastElapsed = elapsed
	return Stats{
		Elapsed:   elapsed,
		Exchanges: s.store.Len(),
		Start:     s.meta.Start,
		Model:     s.meta.Model,
	}
}

// OneShot joins args into one prompt, sends exactly one request, prints the
// reply, and returns without entering the interactive loop.
func (s *Session) OneShot(ctx context.Context, args []string) error {
	prompt := strings.TrimSpace(strings.Join(args, " "))
	if prompt == "" {
		return errors.New("prompt is required")
	}
	s.printer.Question(prompt)
	if err := s.respond(ctx, prompt); err != nil {
		if ctx.Err() != nil {
			s.printer.Goodbye()
			return nil
		}
		s.printer.ErrorReply(err)
	}
	return nil
}

type line struct {
	text string
	err  error
}

// readLines feeds lines from in until EOF, a read error, or done is closed.
func readLines(in io.Reader, done <-chan struct{}) <-chan line {
	ch := make(chan line)
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
		for scanner.Scan() {
			select {
			case ch <- line{text: scanner.Text()}:
			case <-done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case ch <- line{err: err}:
			case <-done:
			}
		}
	}()
	return ch
}

// Run is the interactive loop. It returns nil on quit, end of input, or
// cancellation of ctx, and an error only for failures it cannot recover from.
func (s *Session) Run(ctx context.Context, in io.Reader) (err error) {
	if in == nil {
		return errors.New("input reader is required")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected failure: %v", r)
		}
	}()

	done := make(chan struct{})
	defer close(done)
	lines := readLines(in, done)

	s.printer.Banner(s.meta.Start)
	loggerpkg.Debug(s.verbose, s.logger, "session loop start", map[string]any{"session_id": s.meta.ID})

	for {
		s.printer.Prompt()

		var next line
		var ok bool
		select {
		case <-ctx.Done():
			s.printer.Goodbye()
			return nil
		case next, ok = <-lines:
		}
		if !ok {
			s.printer.Goodbye()
			return nil
		}
		if next.err != nil {
			return fmt.Errorf("read input: %w", next.err)
		}

		input := strings.TrimSpace(next.text)
		if input == "" {
			continue
		}

		handled, quit := s.Dispatch(input)
		if quit {
			return nil
		}
		if handled {
			continue
		}

		if err := s.respond(ctx, input); err != nil {
			if ctx.Err() != nil {
				s.printer.Goodbye()
				return nil
			}
			s.printer.ErrorReply(err)
		}
	}
}
