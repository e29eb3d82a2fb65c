package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// State tracks where a launch attempt is in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateStarting
	StateRunning
	StateFinished
	StateFailedToStart
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	case StateFailedToStart:
		return "failed_to_start"
	default:
		return "unknown"
	}
}

// ErrorKind classifies operational launch failures.
type ErrorKind int

const (
	FailedToStart ErrorKind = iota
	Crashed
	Timedout
	ReadError
	WriteError
	UnknownError
)

func (k ErrorKind) String() string {
	switch k {
	case FailedToStart:
		return "failed_to_start"
	case Crashed:
		return "crashed"
	case Timedout:
		return "timed_out"
	case ReadError:
		return "read_error"
	case WriteError:
		return "write_error"
	default:
		return "unknown"
	}
}

// ExitStatus reports whether the process terminated normally or crashed.
type ExitStatus int

const (
	NormalExit ExitStatus = iota
	CrashExit
)

func (s ExitStatus) String() string {
	if s == CrashExit {
		return "crashed"
	}
	return "normal"
}

// ExitOutcome carries the final exit code and status of a terminated process.
type ExitOutcome struct {
	ExitCode int
	Status   ExitStatus
}

// Notifier receives lifecycle notifications for a launch attempt. All
// notifications are delivered synchronously on the goroutine blocked in Run.
type Notifier interface {
	ProcessStarted(pid int)
	ProcessFailed(kind ErrorKind, program string)
	ProcessFinished(outcome ExitOutcome)
}

// ProcessRunner owns at most one child process at a time. Run blocks the
// caller until the process has exited or definitively failed to start.
type ProcessRunner struct {
	notifier Notifier
	state    State
	cmd      *exec.Cmd
}

func NewProcessRunner(notifier Notifier) *ProcessRunner {
	return &ProcessRunner{notifier: notifier, state: StateIdle}
}

// State returns the current lifecycle state of the runner.
func (r *ProcessRunner) State() State {
	return r.state
}

// Run spawns the given command line as a new OS process and blocks until it
// terminates or the spawn attempt fails. Starting a second process while one
// is outstanding is a caller bug and panics.
//
// No stdin/stdout/stderr channel is opened to the child; the process runs
// with the platform's default I/O arrangement.
func (r *ProcessRunner) Run(command string) {
	if r.cmd != nil || r.state == StateStarting || r.state == StateRunning {
		panic(fmt.Sprintf("launcher: Run called while a process is outstanding (state %s)", r.state))
	}

	r.state = StateStarting

	args := SplitCommand(command)
	if len(args) == 0 {
		r.notifyFailed(FailedToStart, command)
		r.state = StateFailedToStart
		return
	}
	program := args[0]

	cmd := exec.Command(program, args[1:]...)
	r.cmd = cmd

	if err := cmd.Start(); err != nil {
		r.notifyFailed(FailedToStart, program)
		r.state = StateFailedToStart
		r.cmd = nil
		return
	}

	r.state = StateRunning
	r.notifier.ProcessStarted(cmd.Process.Pid)

	waitErr := cmd.Wait()

	// Best-effort termination request in case the process is still nominally
	// alive despite having reported completion. Failure is not an error.
	_ = cmd.Process.Kill()

	outcome, kind, failed := classifyExit(cmd.ProcessState, waitErr)
	if failed {
		r.notifyFailed(kind, program)
	}
	r.notifier.ProcessFinished(outcome)

	r.state = StateFinished
	r.cmd = nil
}

func (r *ProcessRunner) notifyFailed(kind ErrorKind, program string) {
	// This core never attaches pipes to the child, so a read or write error
	// is an impossible platform state, not a runtime condition.
	if kind == ReadError || kind == WriteError {
		panic(fmt.Sprintf("launcher: impossible %s for process without pipes: %s", kind, program))
	}
	r.notifier.ProcessFailed(kind, program)
}

// classifyExit maps a wait result onto the launch error taxonomy. A nonzero
// exit code is still a normal exit; only abnormal termination counts as a
// crash.
func classifyExit(state *os.ProcessState, waitErr error) (ExitOutcome, ErrorKind, bool) {
	if waitErr == nil {
		return ExitOutcome{ExitCode: state.ExitCode(), Status: NormalExit}, 0, false
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) && exitErr.ProcessState != nil {
		ps := exitErr.ProcessState
		if ps.Exited() {
			return ExitOutcome{ExitCode: ps.ExitCode(), Status: NormalExit}, 0, false
		}
		return ExitOutcome{ExitCode: ps.ExitCode(), Status: CrashExit}, Crashed, true
	}

	return ExitOutcome{ExitCode: -1, Status: CrashExit}, UnknownError, true
}
