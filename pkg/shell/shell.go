package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rolodex/rolodex/pkg/book"
	"github.com/rolodex/rolodex/pkg/config"
	"github.com/rolodex/rolodex/pkg/telemetry"
)

// Clock supplies the current wall-clock time. The shell injects it into
// every date computation so the core stays deterministic; tests pin it.
type Clock func() time.Time

// Options configures a Shell. Zero-value fields fall back to sensible
// defaults.
type Options struct {
	// Prompt printed before each input line.
	Prompt string

	// WindowDays is the default birthday window when the birthdays
	// command is given no argument.
	WindowDays int

	Clock   Clock
	Logger  *telemetry.Logger
	Metrics *telemetry.Metrics
	Tracer  *telemetry.Tracer
}

// Shell owns one interactive session: the address book, the command
// table, and the session's telemetry identity.
type Shell struct {
	book      *book.AddressBook
	clock     Clock
	logger    *telemetry.Logger
	metrics   *telemetry.Metrics
	tracer    *telemetry.Tracer
	sessionID string

	// Reloadable settings, guarded because the config watcher applies
	// updates from its own goroutine.
	mu         sync.RWMutex
	prompt     string
	windowDays int

	commands map[string]handlerFunc
}

// handlerFunc executes one command over the shell's state. It returns
// the reply to print, or an error for the shell to translate.
type handlerFunc func(s *Shell, args []string) (string, error)

// New creates a shell around an explicitly passed address book.
func New(b *book.AddressBook, opts Options) *Shell {
	if opts.Prompt == "" {
		opts.Prompt = "Enter a command: "
	}
	if opts.WindowDays <= 0 {
		opts.WindowDays = 7
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = telemetry.NewNopLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics, _ = telemetry.NewMetrics(telemetry.MetricsConfig{})
	}
	if opts.Tracer == nil {
		opts.Tracer, _ = telemetry.NewTracer(telemetry.TracingConfig{}, "rolodex", "dev")
	}

	sessionID := uuid.NewString()
	s := &Shell{
		book:       b,
		clock:      opts.Clock,
		logger:     opts.Logger.NewComponentLogger("shell").WithSessionID(sessionID),
		metrics:    opts.Metrics,
		tracer:     opts.Tracer,
		sessionID:  sessionID,
		prompt:     opts.Prompt,
		windowDays: opts.WindowDays,
	}

	s.commands = map[string]handlerFunc{
		"hello":         handleHello,
		"add":           handleAdd,
		"change":        handleChange,
		"phone":         handlePhone,
		"all":           handleAll,
		"add-birthday":  handleAddBirthday,
		"show-birthday": handleShowBirthday,
		"birthdays":     handleBirthdays,
		"days-to":       handleDaysTo,
		"delete":        handleDelete,
	}

	return s
}

// SessionID returns the session's identity used on logs and spans.
func (s *Shell) SessionID() string {
	return s.sessionID
}

// ApplyConfig applies a reloaded configuration to the live session.
func (s *Shell) ApplyConfig(cfg *config.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompt = cfg.Prompt
	s.windowDays = cfg.BirthdayWindowDays
	s.logger.Debug("Session settings updated from config")
}

// Prompt returns the current prompt string.
func (s *Shell) Prompt() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prompt
}

func (s *Shell) defaultWindow() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.windowDays
}

// HandleLine parses one raw input line, dispatches it, and returns the
// reply to print plus whether the session should end. Errors never
// escape: they are translated into their user-facing messages here.
func (s *Shell) HandleLine(ctx context.Context, line string) (reply string, quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}
	command := strings.ToLower(fields[0])
	args := fields[1:]

	if command == "close" || command == "exit" {
		return "Good bye!", true
	}

	handler, ok := s.commands[command]
	if !ok {
		return "Invalid command.", false
	}

	_, span := s.tracer.StartCommandSpan(ctx, command, s.sessionID)
	defer span.End()

	start := time.Now()
	reply, err := handler(s, args)
	duration := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
		reply = book.UserMessage(err)
		telemetry.RecordError(span, err)

		var be *book.Error
		if errors.As(err, &be) && be.Class == book.ErrorClassValidation {
			s.metrics.RecordValidationFailure(be.Field)
		}
		s.logger.WithCommand(command).WithError(err).Debug("Command failed")
	} else {
		telemetry.RecordSuccess(span)
		s.logger.WithCommand(command).Debug("Command handled")
	}

	s.metrics.RecordCommand(command, status, duration)
	s.metrics.SetContacts(s.book.Len())

	return reply, false
}

// Run drives the read-eval-print loop until close/exit, end of input,
// or context cancellation. All conversational output goes to w; r is
// typically the user's terminal.
func (s *Shell) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	s.logger.Info("Session started")
	fmt.Fprintln(w, "Welcome to the assistant bot!")

	scanner := bufio.NewScanner(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(w, s.Prompt())
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			s.logger.Info("Input closed, ending session")
			return nil
		}

		reply, quit := s.HandleLine(ctx, scanner.Text())
		if reply != "" {
			fmt.Fprintln(w, reply)
		}
		if quit {
			s.logger.Info("Session ended")
			return nil
		}
	}
}
