package scaffold

import "errors"

// Failure kinds. Every error returned by Create matches exactly one of these
// with errors.Is.
var (
	ErrInvalidName        = errors.New("invalid project name")
	ErrAlreadyExists      = errors.New("project directory already exists")
	ErrUnsupportedLicense = errors.New("unsupported license type")
	ErrExternalTool       = errors.New("external tool failed")
	ErrFilesystem         = errors.New("filesystem error")
)

// Error describes the step of the pipeline that failed.
type Error struct {
	Kind error  // one of the Err* kinds above
	Step string // e.g. "write LICENSE"
	Path string // file or directory involved, if any
	Err  error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	msg := e.Step
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg + ": " + e.Kind.Error()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func fsError(step, path string, err error) error {
	return &Error{Kind: ErrFilesystem, Step: step, Path: path, Err: err}
}
