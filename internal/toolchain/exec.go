package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Exec implements Toolchain by running programs found on PATH.
type Exec struct {
	// Stdout and Stderr receive tool output; nil discards it.
	Stdout io.Writer
	Stderr io.Writer
}

var _ Toolchain = (*Exec)(nil)

// InitRepo runs `git init` in dir.
func (e *Exec) InitRepo(ctx context.Context, dir string) error {
	return e.run(ctx, dir, "git", "init")
}

// ProvisionEnv runs `virtualenv venv` in dir, or `python3 -m venv venv` when
// virtualenv is not installed.
func (e *Exec) ProvisionEnv(ctx context.Context, dir string) error {
	if _, err := exec.LookPath("virtualenv"); err == nil {
		return e.run(ctx, dir, "virtualenv", EnvDir)
	}
	for _, python := range []string{"python3", "python"} {
		if _, err := exec.LookPath(python); err == nil {
			return e.run(ctx, dir, python, "-m", "venv", EnvDir)
		}
	}
	return fmt.Errorf("virtualenv or python3: %w", ErrToolNotFound)
}

// Author reads user.name and user.email from git configuration. Unset keys
// yield empty fields rather than an error.
func (e *Exec) Author(ctx context.Context) (Author, error) {
	name, err := gitConfig(ctx, "user.name")
	if err != nil {
		return Author{}, err
	}
	email, err := gitConfig(ctx, "user.email")
	if err != nil {
		return Author{}, err
	}
	return Author{Name: name, Email: email}, nil
}

func gitConfig(ctx context.Context, key string) (string, error) {
	gitBin, err := exec.LookPath("git")
	if err != nil {
		return "", fmt.Errorf("git: %w", ErrToolNotFound)
	}

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, gitBin, "config", "--get", key)
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		// git config exits 1 when the key is not set.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", fmt.Errorf("git config --get %s: %w: %v", key, ErrToolFailed, err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

func (e *Exec) run(ctx context.Context, dir, name string, args ...string) error {
	bin, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%s: %w", name, ErrToolNotFound)
	}

	var stderrBuf bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()
	cmd.Stdout = writerOrDiscard(e.Stdout)
	cmd.Stderr = io.MultiWriter(writerOrDiscard(e.Stderr), &stderrBuf)

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderrBuf.String())
		if msg != "" {
			return fmt.Errorf("%s %s: %w: %v\n%s", name, strings.Join(args, " "), ErrToolFailed, err, msg)
		}
		return fmt.Errorf("%s %s: %w: %v", name, strings.Join(args, " "), ErrToolFailed, err)
	}
	return nil
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
