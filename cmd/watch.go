package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tristendillon/relscan/core/logger"
	"github.com/tristendillon/relscan/core/scanner"
	"github.com/tristendillon/relscan/core/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rescan whenever a source file changes",
	Long: `Runs a scan, then watches the scan root and runs a complete fresh scan
after source files stop changing. Nothing is carried over between scans.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, wd, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		root := cfg.RootPath(wd)

		if stat, err := os.Stat(root); err != nil {
			return fmt.Errorf("cannot watch %s: %w", root, err)
		} else if !stat.IsDir() {
			return fmt.Errorf("cannot watch %s: not a directory", root)
		}

		rescan := func() error {
			// a new reporter per run so buffered formats start empty
			s, err := scanner.New(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			summary, err := s.Scan(root)
			if err != nil {
				return err
			}
			logger.Info("Scanned %d files, %d with implementations", summary.FilesScanned, summary.FilesReported)
			return nil
		}

		fw, err := watcher.NewFileWatcher(root, cfg.Extension, cfg.Exclude)
		if err != nil {
			return err
		}
		defer fw.Close()
		fw.OnChange = rescan

		if err := rescan(); err != nil {
			logger.Error("Initial scan failed: %v", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("Watching %s for *%s changes (Ctrl+C to stop)", root, cfg.Extension)
		return fw.Watch(ctx)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addScanFlags(watchCmd)
}
