package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/filemanager/internal/console"
	"github.com/GriffinCanCode/filemanager/internal/infrastructure/logging"
	"github.com/GriffinCanCode/filemanager/internal/session"
	"github.com/GriffinCanCode/filemanager/internal/tasks"
	"github.com/GriffinCanCode/filemanager/internal/types"
)

// Prompt is printed before each command is read
const Prompt = "Please enter your command:"

const maxLineSize = 1 << 20

// Shell is the read-eval-print loop around one session
type Shell struct {
	in         *bufio.Scanner
	console    *console.Console
	session    *session.Session
	dispatcher *Dispatcher
	runner     *tasks.Runner
	logger     *logging.Logger
}

// New creates a shell reading commands from in
func New(in io.Reader, out *console.Console, sess *session.Session, dispatcher *Dispatcher, runner *tasks.Runner, logger *logging.Logger) *Shell {
	if logger == nil {
		logger = logging.NewNop()
	}
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	return &Shell{
		in:         scanner,
		console:    out,
		session:    sess,
		dispatcher: dispatcher,
		runner:     runner,
		logger:     logger.ForSession(sess.ID().String()),
	}
}

// Run greets the user and processes commands until the input closes or ctx
// is cancelled, then waits for streaming tasks and says goodbye. Completion
// lines from streaming tasks may appear after the next prompt.
func (s *Shell) Run(ctx context.Context) error {
	s.logger.Info("Session started",
		zap.String("dir", s.session.Current()),
		zap.String("display_name", s.session.DisplayName()),
	)

	s.console.Println(s.session.Greeting())
	s.printLocation()
	s.console.Println(Prompt)

	lines, readErr := s.readLines(ctx)
	for {
		select {
		case <-ctx.Done():
			return s.shutdown(nil)
		case line, ok := <-lines:
			if !ok {
				return s.shutdown(<-readErr)
			}
			s.Execute(ctx, line)
			s.console.Println(Prompt)
		}
	}
}

// Execute dispatches one input line, prints its outcome and then the
// current directory
func (s *Shell) Execute(ctx context.Context, line string) types.Outcome {
	outcome := s.dispatcher.Dispatch(ctx, Parse(line), s.session)
	if msg := outcome.Display(); msg != "" {
		s.console.Println(msg)
	}
	s.printLocation()
	return outcome
}

func (s *Shell) printLocation() {
	s.console.Printf("You are currently in %s\n", s.session.Current())
}

func (s *Shell) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		var err error
		defer func() {
			readErr <- err
			close(lines)
		}()

		for s.in.Scan() {
			select {
			case lines <- s.in.Text():
			case <-ctx.Done():
				return
			}
		}
		err = s.in.Err()
	}()
	return lines, readErr
}

func (s *Shell) shutdown(readErr error) error {
	if active := s.runner.Active(); active > 0 {
		s.logger.Debug("Waiting for streaming tasks", zap.Int("active", active))
	}
	s.runner.Wait()

	s.console.Println(s.session.Farewell())
	s.logger.Info("Session ended")

	if readErr != nil {
		return fmt.Errorf("failed to read input: %w", readErr)
	}
	return nil
}

// TaskReporter prints a streaming task's completion line, or the generic
// failure message
func TaskReporter(out *console.Console) tasks.Reporter {
	return func(task *tasks.Task) {
		result, err := task.Result()
		if err != nil {
			out.Println(types.MessageFailed)
			return
		}
		if result.Message != "" {
			out.Println(result.Message)
		}
	}
}
