package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/bspy-dev/bspy/internal/precommit"
	"github.com/bspy-dev/bspy/internal/toolchain"
	"github.com/charmbracelet/log"
)

// File names written at the project root.
const (
	ReadmeFile = "README.md"
	Flake8File = ".flake8"
	initFile   = "__init__.py"
	srcDir     = "src"
)

// Options controls what Create writes. The zero value selects the defaults.
type Options struct {
	License        string            // license type; only "MIT" is supported
	Hooks          *precommit.Config // hook set for .pre-commit-config.yaml
	IgnorePatterns []string          // .gitignore lines
	Author         toolchain.Author  // overrides fields looked up from git config
	Year           int               // copyright year
	SkipGit        bool
	SkipEnv        bool
}

func (o Options) withDefaults() Options {
	if o.License == "" {
		o.License = "MIT"
	}
	if o.Hooks == nil {
		hooks := precommit.DefaultConfig()
		o.Hooks = &hooks
	}
	if o.IgnorePatterns == nil {
		o.IgnorePatterns = DefaultIgnorePatterns()
	}
	if o.Year == 0 {
		o.Year = time.Now().Year()
	}
	return o
}

// Result holds the outcome of a successful Create.
type Result struct {
	Root     string
	Files    []string // slash-separated paths relative to Root, in creation order
	Warnings []string
}

// Scaffolder creates projects, delegating repository and environment setup
// to a Toolchain.
type Scaffolder struct {
	tools  toolchain.Toolchain
	logger *log.Logger
}

// New returns a Scaffolder using tools. A nil logger discards log output.
func New(tools toolchain.Toolchain, logger *log.Logger) *Scaffolder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scaffolder{tools: tools, logger: logger}
}

// Create builds the project described by spec. Steps run in a fixed order and
// the first failure is returned as an *Error; files written before the
// failure stay on disk.
func (s *Scaffolder) Create(ctx context.Context, spec ProjectSpec, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	if err := ValidateName(spec.Name); err != nil {
		return nil, err
	}
	licensePath, err := licenseTemplate(opts.License)
	if err != nil {
		return nil, err
	}

	if err := os.Mkdir(spec.Root, 0755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, &Error{Kind: ErrAlreadyExists, Step: "create project directory", Path: spec.Root, Err: err}
		}
		return nil, fsError("create project directory", spec.Root, err)
	}
	s.logger.Debug("created project directory", "path", spec.Root)

	result := &Result{Root: spec.Root}
	if !isIdentifier(spec.PackageName) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("package name %q is not a valid Python identifier", spec.PackageName))
	}

	pkgDir := filepath.Join(spec.Root, srcDir, spec.PackageName)
	if err := os.MkdirAll(pkgDir, 0755); err != nil {
		return nil, fsError("create package directory", pkgDir, err)
	}
	if err := s.write(result, path.Join(srcDir, spec.PackageName, initFile), nil); err != nil {
		return nil, err
	}

	author := s.resolveAuthor(ctx, opts.Author, result)
	data := &templateData{
		Project:     spec,
		Author:      author,
		AuthorTable: authorTable(author),
		Year:        opts.Year,
	}

	manifest, err := s.renderFile(result, ManifestFile, pyprojectTemplate, data)
	if err != nil {
		return nil, err
	}
	result.Warnings = append(result.Warnings, checkManifest(manifest, spec.PackageName)...)

	if _, err := s.renderFile(result, Flake8File, flake8Template, data); err != nil {
		return nil, err
	}
	if _, err := s.renderFile(result, ReadmeFile, readmeTemplate, data); err != nil {
		return nil, err
	}
	if err := s.write(result, GitignoreFile, renderIgnore(opts.IgnorePatterns)); err != nil {
		return nil, err
	}
	if _, err := s.renderFile(result, LicenseFile, licensePath, data); err != nil {
		return nil, err
	}

	hooks, err := precommit.Marshal(*opts.Hooks)
	if err != nil {
		return nil, fsError("render", precommit.FileName, err)
	}
	if err := s.write(result, precommit.FileName, hooks); err != nil {
		return nil, err
	}
	result.Warnings = append(result.Warnings, checkHooks(hooks)...)

	if !opts.SkipGit {
		s.logger.Info("initializing git repository", "path", spec.Root)
		if err := s.tools.InitRepo(ctx, spec.Root); err != nil {
			return nil, &Error{Kind: ErrExternalTool, Step: "initialize repository", Path: spec.Root, Err: err}
		}
	}
	if !opts.SkipEnv {
		s.logger.Info("provisioning virtual environment", "path", filepath.Join(spec.Root, toolchain.EnvDir))
		if err := s.tools.ProvisionEnv(ctx, spec.Root); err != nil {
			return nil, &Error{Kind: ErrExternalTool, Step: "provision environment", Path: spec.Root, Err: err}
		}
	}

	return result, nil
}

// resolveAuthor fills fields missing from override with the toolchain's
// identity. A failed lookup leaves them empty and records a warning.
func (s *Scaffolder) resolveAuthor(ctx context.Context, override toolchain.Author, result *Result) toolchain.Author {
	if override.Name != "" && override.Email != "" {
		return override
	}
	found, err := s.tools.Author(ctx)
	if err != nil {
		s.logger.Warn("could not read author from git config", "err", err)
		result.Warnings = append(result.Warnings, fmt.Sprintf("could not read author from git config: %v", err))
		return override
	}
	if override.Name == "" {
		override.Name = found.Name
	}
	if override.Email == "" {
		override.Email = found.Email
	}
	return override
}

func (s *Scaffolder) renderFile(result *Result, rel, tmplPath string, data *templateData) ([]byte, error) {
	content, err := render(tmplPath, data)
	if err != nil {
		return nil, fsError("render", rel, err)
	}
	if err := s.write(result, rel, content); err != nil {
		return nil, err
	}
	return content, nil
}

// write creates rel under the project root. Existing files are never replaced.
func (s *Scaffolder) write(result *Result, rel string, content []byte) error {
	full := filepath.Join(result.Root, filepath.FromSlash(rel))
	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fsError("write", full, err)
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return fsError("write", full, err)
	}
	if err := f.Close(); err != nil {
		return fsError("write", full, err)
	}

	result.Files = append(result.Files, rel)
	s.logger.Debug("wrote file", "path", rel, "bytes", len(content))
	return nil
}

// checkHooks validates the rendered hook config and returns schema issues as warnings.
func checkHooks(data []byte) []string {
	res, err := precommit.ValidateDocument(data)
	if err != nil {
		return []string{fmt.Sprintf("could not validate %s: %v", precommit.FileName, err)}
	}
	var warnings []string
	for _, issue := range res.Issues {
		warnings = append(warnings, precommit.FileName+": "+issue.String())
	}
	return warnings
}
