package main

import (
	"fmt"
	"os"

	"advent/internal/config"

	"github.com/spf13/cobra"
)

// initCmd writes a default config into the workspace
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .advent/config.yaml and the inputs directory",
	Long: `Writes a default configuration into the workspace and creates the inputs
directory. Existing files are left alone, so running it twice is safe.

The session token is not written; export AOC_SESSION instead.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultPath(workspace)
	}
	out := cmd.OutOrStdout()

	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(out, "Config already exists at %s\n", path)
	} else if os.IsNotExist(err) {
		if err := config.DefaultConfig().Save(path); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %s\n", path)
	} else {
		return fmt.Errorf("failed to check config: %w", err)
	}

	if err := os.MkdirAll(cfg.Inputs.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create inputs directory: %w", err)
	}
	fmt.Fprintf(out, "Inputs directory: %s\n", cfg.Inputs.Dir)
	return nil
}
