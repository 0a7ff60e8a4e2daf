// Package scaffold creates a new Python project: the directory layout,
// boilerplate files rendered from embedded templates, a git repository and a
// virtual environment. It powers the root "bspy <name>" command.
//
// Create runs as a single linear pipeline. The first failing step aborts the
// rest and nothing already written is removed.
package scaffold
