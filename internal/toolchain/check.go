package toolchain

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Status is the availability of one external program.
type Status struct {
	Tool     string
	Path     string
	Version  string
	Required bool
	Err      error
}

// OK reports whether the tool was found and answered a version query.
func (s Status) OK() bool { return s.Err == nil }

// Check probes the programs used during scaffolding. git is required; at
// least one of virtualenv or python3 must be present for environments.
func Check(ctx context.Context) []Status {
	return []Status{
		probe(ctx, "git", true, "--version"),
		probe(ctx, "virtualenv", false, "--version"),
		probe(ctx, "python3", false, "--version"),
	}
}

func probe(ctx context.Context, tool string, required bool, args ...string) Status {
	st := Status{Tool: tool, Required: required}
	path, err := exec.LookPath(tool)
	if err != nil {
		st.Err = fmt.Errorf("%s: %w", tool, ErrToolNotFound)
		return st
	}
	st.Path = path

	out, err := exec.CommandContext(ctx, path, args...).CombinedOutput()
	if err != nil {
		st.Err = fmt.Errorf("%s %s: %w: %v", tool, strings.Join(args, " "), ErrToolFailed, err)
		return st
	}
	st.Version = strings.TrimSpace(string(out))
	return st
}

// Report writes statuses in the [ OK ]/[MISS] layout used by `doctor` and
// returns false when a required tool, or every environment tool, is missing.
func Report(w io.Writer, statuses []Status) bool {
	healthy := true
	envAvailable := false
	for _, st := range statuses {
		switch {
		case st.OK():
			fmt.Fprintf(w, "  [ OK ] %s (%s)\n", st.Tool, st.Version)
			if !st.Required {
				envAvailable = true
			}
		case st.Required:
			fmt.Fprintf(w, "  [FAIL] %s: %v\n", st.Tool, st.Err)
			healthy = false
		default:
			fmt.Fprintf(w, "  [MISS] %s: %v\n", st.Tool, st.Err)
		}
	}
	if !envAvailable {
		fmt.Fprintln(w, "  [FAIL] no environment provisioner available (install virtualenv or python3)")
		healthy = false
	}
	return healthy
}
