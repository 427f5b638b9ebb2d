package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tristendillon/relscan/core/config"
	"github.com/tristendillon/relscan/core/logger"
	"github.com/tristendillon/relscan/core/scanner"
)

var rootCmd = &cobra.Command{
	Use:   "relscan",
	Short: "Extracts imports and class relations from TypeScript sources.",
	Long: `relscan walks a source tree (./src by default) and prints, for every file
declaring a class that implements an interface, the type-like names it imports
and the implements/extends relations of its classes.

Extraction is line-based pattern matching, not parsing: multi-line imports and
class headers are not recognised.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, wd, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		root := cfg.RootPath(wd)
		logger.Debug("Scanning %s for *%s files", root, cfg.Extension)

		s, err := scanner.New(cfg, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if _, err := s.Scan(root); err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}
		return nil
	},
}

var (
	logfile    string
	verbose    bool
	noColor    bool
	configPath string
	logCloser  io.Closer
)

type scanFlags struct {
	root             string
	extension        string
	format           string
	exclude          []string
	includeFunctions bool
	skipMalformed    bool
}

var flags scanFlags

func Execute() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
		logCloser = nil
	}
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logfile, "logfile", "", "File to write logs to")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored log output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./"+config.FileName+" if present)")

	addScanFlags(rootCmd)
}

func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flags.root, "root", "", "Directory to scan, relative to the working directory (default \"src\")")
	cmd.Flags().StringVar(&flags.extension, "ext", "", "Source file suffix (default \".ts\")")
	cmd.Flags().StringVar(&flags.format, "format", "", "Report format: text, yaml or table (default \"text\")")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "Glob of paths to skip, relative to the root (repeatable)")
	cmd.Flags().BoolVar(&flags.includeFunctions, "include-functions", false, "Also report lowercase imported names")
	cmd.Flags().BoolVar(&flags.skipMalformed, "skip-malformed", false, "Warn and skip class lines without a class token instead of failing")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	logger.SetVerbose(verbose)
	if noColor {
		logger.SetNoColor(true)
	}
	if logfile != "" && logCloser == nil {
		closer, err := logger.AddLogFile(logfile)
		if err != nil {
			return err
		}
		logCloser = closer
	}
	logger.Debug("%s called", cmd.Name())
	return nil
}

// loadConfig resolves the working directory once and layers flags that were
// set explicitly over the config file.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.Load(wd, configPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}

	f := cmd.Flags()
	if f.Changed("root") {
		cfg.Root = flags.root
	}
	if f.Changed("ext") {
		cfg.Extension = flags.extension
	}
	if f.Changed("format") {
		cfg.Format = flags.format
	}
	if f.Changed("exclude") {
		cfg.Exclude = append(cfg.Exclude, flags.exclude...)
	}
	if f.Changed("include-functions") {
		cfg.IncludeFunctions = flags.includeFunctions
	}
	if f.Changed("skip-malformed") {
		cfg.SkipMalformed = flags.skipMalformed
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid options: %w", err)
	}
	return cfg, wd, nil
}
