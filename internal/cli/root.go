package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"ragdemo/config"
	"ragdemo/internal/logging"
)

var (
	cfgFile  string
	cfg      *config.Config
	rootDir  string
	provider string
	logLevel string
	logger   *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ragdemo",
	Short: "Compare naive LLM answers with retrieval-augmented ones",
	Long: `ragdemo answers a question twice: once by asking the LLM directly, and
once after retrieving the knowledge-base documents that share words with the
question and putting them in the prompt.

Example usage:
  ragdemo answer                                  # Project Chimera demo
  ragdemo answer -q "What is Project Chimera?"    # Your own question
  ragdemo retrieve -q "neural interface"          # Show ranked documents
  ragdemo prompt -q "neural interface" --mode rag # Show the RAG prompt
  ragdemo serve                                   # HTTP API`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if provider != "" {
			cfg.LLM.Provider = provider
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}

		if err := config.LoadEnv(rootDir); err != nil {
			return fmt.Errorf("failed to load .env: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err = logging.New(cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./ragdemo.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory for config, .env and relative paths (default is current directory)")
	rootCmd.PersistentFlags().StringVar(&provider, "provider", "", "LLM provider: openai, deepseek, ollama or mock (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}

// GetLogger returns the logger built from config, or a no-op logger before
// the root command has run.
func GetLogger() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
