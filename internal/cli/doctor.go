package cli

import (
	"errors"
	"fmt"

	"github.com/bspy-dev/bspy/internal/config"
	"github.com/bspy-dev/bspy/internal/toolchain"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the tools used to create projects are available",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		ctx := cmd.Context()

		fmt.Fprintln(w, "Tools:")
		healthy := toolchain.Report(w, toolchain.Check(ctx))

		fmt.Fprintln(w, "\nAuthor:")
		tools := &toolchain.Exec{}
		found, err := tools.Author(ctx)
		if err != nil {
			fmt.Fprintf(w, "  [WARN] could not read git config: %v\n", err)
		}
		reportAuthorField(cmd, "name", config.AuthorName(), found.Name)
		reportAuthorField(cmd, "email", config.AuthorEmail(), found.Email)

		if !healthy {
			return errors.New("doctor found problems")
		}
		return nil
	},
}

func reportAuthorField(cmd *cobra.Command, field, configured, fromGit string) {
	w := cmd.OutOrStdout()
	switch {
	case configured != "":
		fmt.Fprintf(w, "  [ OK ] %s: %s (from config)\n", field, configured)
	case fromGit != "":
		fmt.Fprintf(w, "  [ OK ] %s: %s (from git config)\n", field, fromGit)
	default:
		fmt.Fprintf(w, "  [MISS] %s not set; run 'git config --global user.%s ...' or 'bspy config set author.%s ...'\n", field, field, field)
	}
}
