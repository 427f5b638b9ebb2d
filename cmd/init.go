package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tristendillon/relscan/core/config"
	"github.com/tristendillon/relscan/core/logger"
)

var (
	force bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter relscan.yaml",
	Long:  `Writes relscan.yaml with the default settings into the working directory.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		path := filepath.Join(wd, config.FileName)
		if _, err := os.Stat(path); err == nil {
			if !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}
			logger.Debug("%s already exists. Overwriting.", path)
		}

		if err := config.Write(path, config.Default()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
}
