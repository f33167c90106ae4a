package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdedit/internal/configloader"
)

type configFlags struct {
	env   bool
	paths bool
}

func newConfigCommand(flags *globalFlags) *cobra.Command {
	cf := &configFlags{}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long: `Print the configuration after merging defaults, config files, GOMDEDIT_*
environment variables and flags, as YAML.

Examples:
  gomdedit config
  gomdedit config --paths    # Show which files were loaded
  gomdedit config --env      # List supported environment variables`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cf.env {
				return writeEnvVars(cmd.OutOrStdout())
			}

			sess, err := newSession(cmd, flags, nil)
			if err != nil {
				return err
			}

			if cf.paths {
				return writePaths(sess.out, sess.loaded)
			}

			data, err := sess.cfg.ToYAML()
			if err != nil {
				return err
			}
			_, err = sess.out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&cf.env, "env", false, "list supported environment variables")
	cmd.Flags().BoolVar(&cf.paths, "paths", false, "list discovered and loaded config files")

	return cmd
}

func writeEnvVars(w io.Writer) error {
	for _, v := range configloader.ListEnvVars() {
		if _, err := fmt.Fprintf(w, "%-26s %s\n", v.Name, v.Description); err != nil {
			return fmt.Errorf("write env vars: %w", err)
		}
	}
	return nil
}

func writePaths(w io.Writer, loaded *configloader.LoadResult) error {
	orNone := func(path string) string {
		if path == "" {
			return "(none)"
		}
		return path
	}

	lines := [][2]string{
		{"system", orNone(loaded.Paths.System)},
		{"user", orNone(loaded.Paths.User)},
		{"project", orNone(loaded.Paths.Project)},
		{"explicit", orNone(loaded.Paths.Explicit)},
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%-9s %s\n", line[0]+":", line[1]); err != nil {
			return fmt.Errorf("write paths: %w", err)
		}
	}
	return nil
}
