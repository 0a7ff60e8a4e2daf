// Package toolchain wraps the external programs a new project is handed to
// after its files are written: git for the repository and virtualenv (or
// python3 -m venv) for the isolated environment. Calls block until the
// program exits; there is no timeout.
package toolchain
