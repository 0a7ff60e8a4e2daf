package scaffold

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ProjectSpec holds the names and location derived from the requested
// project name. It is built once and not modified afterwards.
type ProjectSpec struct {
	Name        string // as given, e.g. "my-app"
	PackageName string // importable name, e.g. "my_app"
	DisplayName string // README heading, e.g. "my app"
	Root        string // directory the project is created in
}

// NewProjectSpec validates name and derives the project names, rooting the
// project at parentDir/name.
func NewProjectSpec(name, parentDir string) (ProjectSpec, error) {
	if err := ValidateName(name); err != nil {
		return ProjectSpec{}, err
	}
	pkg := PackageName(name)
	return ProjectSpec{
		Name:        name,
		PackageName: pkg,
		DisplayName: strings.ReplaceAll(pkg, "_", " "),
		Root:        filepath.Join(parentDir, name),
	}, nil
}

// ValidateName rejects names that are empty, contain path separators or
// traversal segments, or use characters outside [A-Za-z0-9_-].
func ValidateName(name string) error {
	if name == "" {
		return &Error{Kind: ErrInvalidName, Step: "validate name", Err: fmt.Errorf("name must not be empty")}
	}
	if !namePattern.MatchString(name) {
		return &Error{
			Kind: ErrInvalidName,
			Step: "validate name",
			Err:  fmt.Errorf("invalid name %q: must match pattern [A-Za-z0-9][A-Za-z0-9_-]*", name),
		}
	}
	return nil
}

// PackageName converts a project name into its Python package name.
func PackageName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// isIdentifier reports whether s is usable as a Python import name.
func isIdentifier(s string) bool {
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return s != ""
}
