// Package devserver manages the frontend dev-server subprocess during
// `macforge dev`: spawning, signal forwarding and shutdown.
package devserver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/macforge/macforge/internal/logger"
)

// killGracePeriod is how long Stop waits after SIGTERM before SIGKILL.
const killGracePeriod = 5 * time.Second

// Runner wraps the dev-server subprocess. The process runs in its own
// process group so signals reach the whole shell pipeline.
type Runner struct {
	cmd     *exec.Cmd
	done    chan error
	sigs    chan os.Signal
	stopped chan struct{}
}

// Start launches command via the given shell in dir, inheriting stdout
// and stderr, and begins forwarding SIGINT/SIGTERM to the child group.
func Start(command, dir, shell string) (*Runner, error) {
	if shell == "" {
		shell = "sh"
	}

	cmd := exec.Command(shell, "-c", command)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start dev server %q: %w", command, err)
	}
	logger.L().Debugw("dev server started", "pid", cmd.Process.Pid, "command", command)

	r := &Runner{
		cmd:     cmd,
		done:    make(chan error, 1),
		sigs:    make(chan os.Signal, 2),
		stopped: make(chan struct{}),
	}

	go func() {
		r.done <- cmd.Wait()
	}()

	signal.Notify(r.sigs, syscall.SIGINT, syscall.SIGTERM)
	go r.forwardSignals()

	return r, nil
}

// forwardSignals relays termination signals to the child process group
// until the runner stops.
func (r *Runner) forwardSignals() {
	for {
		select {
		case sig, ok := <-r.sigs:
			if !ok {
				return
			}
			s, ok := sig.(syscall.Signal)
			if !ok {
				continue
			}
			logger.L().Debugw("forwarding signal", "signal", sig)
			r.signalGroup(s)
		case <-r.stopped:
			return
		}
	}
}

// signalGroup sends sig to the child's process group.
func (r *Runner) signalGroup(sig syscall.Signal) {
	if r.cmd.Process == nil {
		return
	}
	// Negative pid addresses the whole group.
	_ = syscall.Kill(-r.cmd.Process.Pid, sig)
}

// Wait blocks until the subprocess exits and returns its error.
func (r *Runner) Wait() error {
	err := <-r.done
	r.cleanup()
	return err
}

// WaitContext waits for exit or context cancellation. On cancellation the
// child group receives SIGTERM, then SIGKILL after a grace period.
func (r *Runner) WaitContext(ctx context.Context) error {
	select {
	case err := <-r.done:
		r.cleanup()
		return err
	case <-ctx.Done():
		return r.Stop()
	}
}

// Stop terminates the subprocess group: SIGTERM first, SIGKILL if it does
// not exit within the grace period.
func (r *Runner) Stop() error {
	r.signalGroup(syscall.SIGTERM)
	select {
	case err := <-r.done:
		r.cleanup()
		return err
	case <-time.After(killGracePeriod):
		r.signalGroup(syscall.SIGKILL)
		err := <-r.done
		r.cleanup()
		return err
	}
}

func (r *Runner) cleanup() {
	signal.Stop(r.sigs)
	select {
	case <-r.stopped:
	default:
		close(r.stopped)
	}
}

// ExitCode extracts the subprocess exit status from a Wait error: 0 when
// err is nil, the child's own code for a plain exit, 128+signum when the
// child died from a signal, 1 when the process never ran.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return 128 + int(ws.Signal())
		}
		return exitErr.ExitCode()
	}
	return 1
}

// Interrupted reports whether the Wait error means the child died from
// SIGINT or SIGTERM. With signal forwarding that is the expected Ctrl-C
// shutdown path, not a failure.
func Interrupted(err error) bool {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return false
	}
	ws, ok := exitErr.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() {
		return false
	}
	return ws.Signal() == syscall.SIGINT || ws.Signal() == syscall.SIGTERM
}
