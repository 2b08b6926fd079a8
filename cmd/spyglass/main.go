package main

import (
	"fmt"
	"os"

	"spyglass-srv/config"
	"spyglass-srv/pkg/locale"
	"spyglass-srv/pkg/log"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	verbose      bool
	lang         string
	narrationDir string
	cfg          *config.Config
	logger       log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		newPrinter(os.Stderr).failure(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "spyglass",
	Short:         "Competitive intelligence reports in your terminal",
	Long:          "Spyglass generates a competitive intelligence report for up to three competitors and presents it section by section, with optional narration written as WAV files.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, err = config.LoadCLI()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if verbose {
			cfg.Logger.Level = "debug"
		}
		logger = log.Init(log.ZapConfig{
			Level:        cfg.Logger.Level,
			Mode:         cfg.Logger.Mode,
			Encoding:     cfg.Logger.Encoding,
			ColorEnabled: cfg.Logger.ColorEnabled,
		})

		if !locale.IsValidLang(lang) {
			return fmt.Errorf("unsupported language %q", lang)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", locale.DefaultLang, "Message language (pt, en)")
	rootCmd.PersistentFlags().StringVar(&narrationDir, "narration-dir", "spyglass-narration", "Directory for narration WAV files")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(presentCmd)
	rootCmd.AddCommand(historyCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("spyglass", version)
	},
}
