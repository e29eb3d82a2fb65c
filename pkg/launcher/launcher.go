package launcher

import (
	"github.com/sirupsen/logrus"

	"github.com/SylleoYr/pegasus-frontend/pkg/logger"
)

const separator = "----------------------------------------"

// Failure records which operational error ended a launch attempt.
type Failure struct {
	Kind    ErrorKind
	Program string
}

// Result summarizes a completed launch attempt for the caller.
type Result struct {
	Command string
	Started bool
	PID     int
	Outcome *ExitOutcome
	Failure *Failure
}

// Succeeded reports whether the process started and exited cleanly with code 0.
func (r Result) Succeeded() bool {
	return r.Failure == nil && r.Outcome != nil &&
		r.Outcome.Status == NormalExit && r.Outcome.ExitCode == 0
}

// Launcher builds the launch command for a game and runs it in the
// foreground, treating the whole launch as one atomic blocking action.
type Launcher struct {
	logger   *logger.Logger
	runner   *ProcessRunner
	notifier *logNotifier
	done     func()
}

type Option func(*Launcher)

// WithDone sets a callback fired after every launch attempt, successful or
// not, so the surrounding application can resume.
func WithDone(done func()) Option {
	return func(l *Launcher) {
		l.done = done
	}
}

// WithLogger overrides the launcher's logger
func WithLogger(log *logger.Logger) Option {
	return func(l *Launcher) {
		l.logger = log
		l.notifier.logger = log
	}
}

func NewLauncher(opts ...Option) *Launcher {
	l := &Launcher{
		logger:   logger.NewLogger(logrus.InfoLevel),
		notifier: &logNotifier{},
	}
	l.notifier.logger = l.logger
	l.runner = NewProcessRunner(l.notifier)
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch substitutes the rom path into the platform's command template,
// spawns the resulting command and blocks until the game has exited or
// failed to start. The done callback fires unconditionally afterwards.
func (l *Launcher) Launch(template, romPath string) Result {
	command := BuildCommand(template, romPath)

	result := Result{Command: command}
	l.notifier.result = &result

	l.logger.Info(separator)
	l.logger.Infof("Executing command: `%s`", command)

	l.runner.Run(command)

	l.notifier.result = nil
	if l.done != nil {
		l.done()
	}
	return result
}

// logNotifier translates lifecycle notifications into human-readable log
// lines and records them on the in-flight Result.
type logNotifier struct {
	logger *logger.Logger
	result *Result
}

func (n *logNotifier) ProcessStarted(pid int) {
	if n.result != nil {
		n.result.Started = true
		n.result.PID = pid
	}
	n.logger.Infof("Process %d started", pid)
}

func (n *logNotifier) ProcessFailed(kind ErrorKind, program string) {
	if n.result != nil {
		n.result.Failure = &Failure{Kind: kind, Program: program}
	}
	switch kind {
	case FailedToStart:
		n.logger.Warnf("Could not run the command `%s`; either the invoked program"+
			" is missing, or you don't have the permission to run it.", program)
	case Crashed:
		n.logger.Warnf("The external program `%s` has crashed", program)
	case Timedout:
		n.logger.Warnf("The command `%s` has not started in a reasonable amount of time", program)
	default:
		n.logger.Warnf("Running the command `%s` failed due to an unknown error", program)
	}
}

func (n *logNotifier) ProcessFinished(outcome ExitOutcome) {
	if n.result != nil {
		o := outcome
		n.result.Outcome = &o
	}
	switch outcome.Status {
	case CrashExit:
		n.logger.Infof("The external program has crashed on exit, with exit code %d", outcome.ExitCode)
	default:
		n.logger.Infof("The external program has finished cleanly, with exit code %d", outcome.ExitCode)
	}
}
