package cli

import (
	"errors"

	"github.com/bspy-dev/bspy/internal/scaffold"
)

// Process exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitInvalidInput indicates a bad project name or license type.
	ExitInvalidInput = 2

	// ExitAlreadyExists indicates the project directory already exists.
	ExitAlreadyExists = 3

	// ExitToolFailure indicates git or the environment provisioner failed.
	ExitToolFailure = 4

	// ExitFilesystem indicates a file or directory could not be written.
	ExitFilesystem = 5
)

// exitCode maps an error to its process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, scaffold.ErrInvalidName), errors.Is(err, scaffold.ErrUnsupportedLicense):
		return ExitInvalidInput
	case errors.Is(err, scaffold.ErrAlreadyExists):
		return ExitAlreadyExists
	case errors.Is(err, scaffold.ErrExternalTool):
		return ExitToolFailure
	case errors.Is(err, scaffold.ErrFilesystem):
		return ExitFilesystem
	default:
		return ExitGeneralError
	}
}
