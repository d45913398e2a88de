// Package tuitest drives a terminal program inside a pseudo terminal and
// records what it draws. It backs the end-to-end tests of the CLI.
package tuitest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/creack/pty"
)

const (
	defaultWidth   = 100
	defaultHeight  = 32
	defaultTimeout = 10 * time.Second
)

// Step is one scripted interaction. Delay elapses before Input is written.
type Step struct {
	Delay time.Duration
	Input []byte
}

// Wait pauses the script.
func Wait(d time.Duration) Step {
	return Step{Delay: d}
}

// Type writes text as if typed.
func Type(text string) Step {
	return Step{Input: []byte(text)}
}

// Press writes a key sequence, eg. KeyEsc.
func Press(key []byte) Step {
	return Step{Input: key}
}

// Config configures how the harness spawns and drives the program.
type Config struct {
	Command          []string
	Dir              string
	Env              []string
	Width            int
	Height           int
	Steps            []Step
	Timeout          time.Duration
	AllowedExitCodes []int
	AllowInterrupt   bool
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	return c
}

// Recording contains the raw terminal stream plus parsed frames.
type Recording struct {
	Raw      []byte
	Frames   []Frame
	Duration time.Duration
}

// Run executes the configured command inside a PTY, replays the scripted
// inputs, and captures every byte written to the terminal.
func Run(ctx context.Context, cfg Config) (*Recording, error) {
	if len(cfg.Command) == 0 {
		return nil, errors.New("tuitest: command is required")
	}
	cfg = cfg.withDefaults()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, cfg.Command[0], cfg.Command[1:]...)
	cmd.Dir = cfg.Dir
	cmd.Env = buildEnv(cfg.Env)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(cfg.Height), Cols: uint16(cfg.Width)})
	if err != nil {
		return nil, fmt.Errorf("tuitest: start program: %w", err)
	}
	defer func() { _ = ptmx.Close() }()

	capture := &screenCapture{}
	copyDone := make(chan struct{})
	go func() {
		defer close(copyDone)
		capture.pump(ptmx, newTerminalResponder(ptmx))
	}()

	start := time.Now()
	if err := replay(ctx, ptmx, cfg.Steps); err != nil {
		return nil, err
	}
	if err := waitForExit(ctx, cmd, cfg); err != nil {
		return nil, err
	}

	// Closing the PTY lets the reader goroutine finish draining.
	_ = ptmx.Close()
	<-copyDone

	raw := capture.snapshot()
	return &Recording{Raw: raw, Frames: parseFrames(raw), Duration: time.Since(start)}, nil
}

func replay(ctx context.Context, ptmx *os.File, steps []Step) error {
	for _, step := range steps {
		if step.Delay > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("tuitest: context cancelled before script finished: %w", ctx.Err())
			case <-time.After(step.Delay):
			}
		}
		if len(step.Input) == 0 {
			continue
		}
		if _, err := ptmx.Write(step.Input); err != nil {
			return fmt.Errorf("tuitest: write input: %w", err)
		}
	}
	return nil
}

func waitForExit(ctx context.Context, cmd *exec.Cmd, cfg Config) error {
	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		if err == nil {
			return nil
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			for _, code := range cfg.AllowedExitCodes {
				if exitErr.ExitCode() == code {
					return nil
				}
			}
		}
		if cfg.AllowInterrupt && strings.Contains(err.Error(), "signal: interrupt") {
			return nil
		}
		return fmt.Errorf("tuitest: program exited with error: %w", err)
	case <-ctx.Done():
		return fmt.Errorf("tuitest: timeout waiting for program exit: %w", ctx.Err())
	}
}

type screenCapture struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *screenCapture) pump(ptmx *os.File, responder *terminalResponder) {
	chunk := make([]byte, 4096)
	for {
		n, err := ptmx.Read(chunk)
		if n > 0 {
			responder.Process(chunk[:n])
			s.mu.Lock()
			_, _ = s.buf.Write(chunk[:n])
			s.mu.Unlock()
		}
		if err != nil {
			// EOF, a closed PTY and EIO on Linux all mean the program is gone.
			return
		}
	}
}

func (s *screenCapture) snapshot() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.buf.Bytes()...)
}

func buildEnv(extra []string) []string {
	env := append(os.Environ(), extra...)
	for _, entry := range env {
		if strings.HasPrefix(entry, "TERM=") {
			return env
		}
	}
	return append(env, "TERM=xterm-256color")
}

var (
	// KeyEnter sends a carriage return to the PTY.
	KeyEnter = []byte{'\r'}
	// KeyCtrlC requests the program to terminate.
	KeyCtrlC = []byte{3}
	// KeyEsc leaves the editor or overlays.
	KeyEsc = []byte{27}
	// KeyRight is the right arrow.
	KeyRight = []byte("\x1b[C")
)
