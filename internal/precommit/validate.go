package precommit

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// versionLike matches revs that are meant to be release tags rather than
// commit hashes or branch names.
var versionLike = regexp.MustCompile(`^v?[0-9]+\.[0-9]`)

// Validate checks the structural rules pre-commit enforces when it loads a
// config: every repo names a source, remote repos pin a rev, every hook has
// an id and local hooks carry a name, entry and language. Revs that look like
// release tags must parse as semver.
func (c Config) Validate() error {
	var errs []error
	if len(c.Repos) == 0 {
		errs = append(errs, errors.New("no repos defined"))
	}
	for i, r := range c.Repos {
		prefix := fmt.Sprintf("repos[%d]", i)
		if r.Repo == "" {
			errs = append(errs, fmt.Errorf("%s: missing repo", prefix))
		}
		if r.Repo != RepoLocal && r.Repo != RepoMeta {
			if r.Rev == "" {
				errs = append(errs, fmt.Errorf("%s (%s): missing rev", prefix, r.Repo))
			} else if err := checkRev(r.Rev); err != nil {
				errs = append(errs, fmt.Errorf("%s (%s): %w", prefix, r.Repo, err))
			}
		}
		if len(r.Hooks) == 0 {
			errs = append(errs, fmt.Errorf("%s (%s): no hooks", prefix, r.Repo))
		}
		for j, h := range r.Hooks {
			if strings.TrimSpace(h.ID) == "" {
				errs = append(errs, fmt.Errorf("%s.hooks[%d]: missing id", prefix, j))
			}
			if r.Repo == RepoLocal {
				errs = append(errs, checkLocalHook(fmt.Sprintf("%s.hooks[%d]", prefix, j), h)...)
			}
		}
	}
	return errors.Join(errs...)
}

func checkLocalHook(prefix string, h Hook) []error {
	var errs []error
	for _, f := range []struct{ key, value string }{
		{"name", h.Name},
		{"entry", h.Entry},
		{"language", h.Language},
	} {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, fmt.Errorf("%s (%s): local hook missing %s", prefix, h.ID, f.key))
		}
	}
	return errs
}

func checkRev(rev string) error {
	if !versionLike.MatchString(rev) {
		return nil
	}
	if _, err := semver.NewVersion(strings.TrimPrefix(rev, "v")); err != nil {
		return fmt.Errorf("rev %q is not a valid version: %w", rev, err)
	}
	return nil
}
