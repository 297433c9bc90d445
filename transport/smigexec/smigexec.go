// Package smigexec runs command lists with the smig executable:
//
//	smig performcommand -jsonstring '<command list>'
//
// It also reads and sets the launch agent's idle time with
// smig getproperty/setproperty -property idletime.
//
// Importing the package registers it as "smig". The executable is taken
// from $SMIG_PATH, or found on $PATH as "smig".
package smigexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/smig"
	"github.com/gogpu/smig/command"
	"github.com/gogpu/smig/transport"
)

// DefaultExecutable is run when neither WithExecutable nor $SMIG_PATH is set.
const DefaultExecutable = "smig"

func init() {
	transport.Register("smig", func() transport.Performer {
		return New()
	})
}

// Performer runs batches in a child smig process.
type Performer struct {
	exe    string
	args   []string
	env    []string
	logger *slog.Logger
}

// Option configures a Performer.
type Option func(*Performer)

// WithExecutable sets the executable to run.
func WithExecutable(path string) Option {
	return func(p *Performer) { p.exe = path }
}

// WithArgs inserts arguments before performcommand.
func WithArgs(args ...string) Option {
	return func(p *Performer) { p.args = append(p.args, args...) }
}

// WithEnv adds KEY=value pairs to the inherited environment.
func WithEnv(env ...string) Option {
	return func(p *Performer) { p.env = append(p.env, env...) }
}

// WithLogger sets the logger. The default is smig.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(p *Performer) { p.logger = l }
}

// New returns a performer for the smig executable.
func New(opts ...Option) *Performer {
	p := &Performer{exe: os.Getenv("SMIG_PATH")}
	if p.exe == "" {
		p.exe = DefaultExecutable
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Executable returns the executable that will be run.
func (p *Performer) Executable() string { return p.exe }

func (p *Performer) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return smig.Logger()
}

// Perform runs b and waits for the process to exit. A non-zero exit is
// returned as a *transport.ExitError carrying everything the process wrote.
func (p *Performer) Perform(ctx context.Context, b *command.Batch) (*transport.Result, error) {
	if b == nil {
		return nil, transport.ErrNoBatch
	}
	p.log().Debug("smigexec: perform", "exe", p.exe, "commands", b.Len(), "async", b.RunsAsynchronously())
	out, err := p.run(ctx, "performcommand", "-jsonstring", b.String())
	if err != nil {
		return nil, err
	}
	return &transport.Result{
		Output:        out,
		Asynchronous:  b.RunsAsynchronously(),
		SaveResultsTo: b.SaveResultsTo(),
	}, nil
}

// Idle time limits accepted by SetIdleTime.
const (
	MinIdleTime = time.Second
	MaxIdleTime = 15 * time.Minute
)

// IdleTime returns how long the renderer's launch agent stays alive with no
// objects before it exits.
func (p *Performer) IdleTime(ctx context.Context) (time.Duration, error) {
	out, err := p.run(ctx, "getproperty", "-property", "idletime")
	if err != nil {
		return 0, err
	}
	secs, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		return 0, fmt.Errorf("smigexec: idletime %q: %w", strings.TrimSpace(out), err)
	}
	return time.Duration(secs) * time.Second, nil
}

// SetIdleTime sets the launch agent's idle time, in whole seconds between
// MinIdleTime and MaxIdleTime.
func (p *Performer) SetIdleTime(ctx context.Context, d time.Duration) error {
	if d < MinIdleTime || d > MaxIdleTime {
		return fmt.Errorf("smigexec: idletime %v outside [%v, %v]", d, MinIdleTime, MaxIdleTime)
	}
	secs := strconv.Itoa(int(d / time.Second))
	_, err := p.run(ctx, "setproperty", "-property", "idletime", secs)
	return err
}

// run starts the executable with args after the configured ones and returns
// its standard output.
func (p *Performer) run(ctx context.Context, args ...string) (string, error) {
	all := make([]string, 0, len(p.args)+len(args))
	all = append(all, p.args...)
	all = append(all, args...)

	cmd := exec.CommandContext(ctx, p.exe, all...)
	if len(p.env) > 0 {
		cmd.Env = append(os.Environ(), p.env...)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", fmt.Errorf("smigexec: %s: %w", p.exe, ctxErr)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		msg := stdout.String() + stderr.String()
		p.log().Warn("smigexec: renderer failed", "exe", p.exe, "code", exitErr.ExitCode(), "message", msg)
		return "", &transport.ExitError{Code: exitErr.ExitCode(), Message: msg}
	}
	if err != nil {
		return "", fmt.Errorf("smigexec: run %s: %w", p.exe, err)
	}
	return stdout.String(), nil
}
