package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bspy-dev/bspy/internal/branding"
	"github.com/bspy-dev/bspy/internal/config"
	"github.com/bspy-dev/bspy/internal/output"
	"github.com/bspy-dev/bspy/internal/precommit"
	"github.com/bspy-dev/bspy/internal/scaffold"
	"github.com/bspy-dev/bspy/internal/toolchain"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose       bool
	createLicense string
	createHooks   string
	createNoGit   bool
	createNoVenv  bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logging and external tool output")
	rootCmd.Flags().StringVar(&createLicense, "license", "", "License type (default from config, otherwise MIT)")
	rootCmd.Flags().StringVar(&createHooks, "hooks", "", "Path to a .pre-commit-config.yaml to use instead of the default hooks")
	rootCmd.Flags().BoolVar(&createNoGit, "no-git", false, "Skip git repository initialization")
	rootCmd.Flags().BoolVar(&createNoVenv, "no-venv", false, "Skip virtual environment creation")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <project-name>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a new Python project: a src/ layout, pyproject.toml, README,
LICENSE, .gitignore, .flake8 and .pre-commit-config.yaml, then runs git init and
creates a virtual environment in venv/.

A project named after a subcommand (completion, config, doctor, help, version) must follow
"--" so that it is not taken for the subcommand.

Examples:
  bspy my-app
  bspy my-app --no-venv
  bspy my-app --hooks ./team-hooks.yaml
  bspy --no-git -- doctor`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		output.SetupLogging(verbose)
		return config.Load()
	},
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	spec, err := scaffold.NewProjectSpec(args[0], cwd)
	if err != nil {
		return err
	}

	opts := scaffold.Options{
		License: createLicense,
		Author: toolchain.Author{
			Name:  config.AuthorName(),
			Email: config.AuthorEmail(),
		},
		SkipGit: createNoGit,
		SkipEnv: createNoVenv,
	}
	if opts.License == "" {
		opts.License = config.License()
	}

	hooksFile := createHooks
	if hooksFile == "" {
		hooksFile = config.HooksFile()
	}
	if hooksFile != "" {
		hooks, err := precommit.Load(hooksFile)
		if err != nil {
			return fmt.Errorf("loading hook config: %w", err)
		}
		opts.Hooks = &hooks
		output.Debug("using hook config", "path", hooksFile)
	}

	tools := &toolchain.Exec{}
	if verbose {
		tools.Stdout = cmd.ErrOrStderr()
		tools.Stderr = cmd.ErrOrStderr()
	}

	result, err := scaffold.New(tools, output.Logger).Create(cmd.Context(), spec, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	output.PrintSummary(out, output.Summary{
		Root:     filepath.Base(result.Root),
		Files:    result.Files,
		Warnings: result.Warnings,
	})

	steps := []string{"cd " + spec.Name}
	if !createNoVenv {
		steps = append(steps, "source "+toolchain.EnvDir+"/bin/activate")
	}
	steps = append(steps, "pre-commit install")
	output.PrintNextSteps(out, steps...)
	return nil
}

// Execute runs the root command with build info injected via ldflags and
// returns the process exit code.
func Execute(version, commit, date string) int {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		output.Error(err.Error())
		return exitCode(err)
	}
	return ExitSuccess
}
