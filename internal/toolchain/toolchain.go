package toolchain

import (
	"context"
	"errors"
)

// EnvDir is the name of the environment directory created inside a project.
const EnvDir = "venv"

var (
	// ErrToolNotFound indicates a required program is not on PATH.
	ErrToolNotFound = errors.New("tool not found")

	// ErrToolFailed indicates a program ran but exited unsuccessfully.
	ErrToolFailed = errors.New("tool failed")
)

// Author is the identity recorded in generated metadata. Either field may be empty.
type Author struct {
	Name  string
	Email string
}

// Toolchain is the set of external capabilities the scaffolder depends on.
type Toolchain interface {
	// InitRepo initializes a version-control repository in dir.
	InitRepo(ctx context.Context, dir string) error
	// ProvisionEnv creates an isolated dependency environment inside dir.
	ProvisionEnv(ctx context.Context, dir string) error
	// Author returns the user identity from version-control configuration.
	Author(ctx context.Context) (Author, error)
}
