package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"ragdemo/internal/usecase"
)

var (
	batchFile   string
	batchOutput string
	batchMode   string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Answer every query in a file and write a JSON report",
	Long: `Read one query per line (blank lines and lines starting with '#' are
skipped), answer each one and write the comparisons as a JSON report.
The first LLM failure stops the run.

Examples:
  ragdemo batch -f queries.txt -o report.json
  cat queries.txt | ragdemo batch -f - --mode rag`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "queries file, '-' for stdin (required)")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "report file (default stdout)")
	batchCmd.Flags().StringVarP(&batchMode, "mode", "m", string(usecase.ModeBoth), "naive, rag or both")
	batchCmd.MarkFlagRequired("file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	mode, err := usecase.ParseMode(batchMode)
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if batchFile != "-" {
		f, err := os.Open(batchFile)
		if err != nil {
			return fmt.Errorf("failed to open queries file: %w", err)
		}
		defer f.Close()
		in = f
	}
	queries, err := usecase.ReadQueries(in)
	if err != nil {
		return fmt.Errorf("failed to read queries: %w", err)
	}
	if len(queries) == 0 {
		return fmt.Errorf("no queries in %s", batchFile)
	}

	c, err := buildComponents()
	if err != nil {
		return err
	}
	answerUC, model, err := buildAnswer(c)
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(queries),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]Answering[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(cmd.ErrOrStderr())
		}),
	)

	batchUC := usecase.NewBatchUseCase(answerUC, model.ModelName())
	report, runErr := batchUC.Run(queries, mode, func(done, total int) {
		_ = bar.Set(done)
	})

	GetLogger().Info("batch finished",
		zap.String("run_id", report.RunID),
		zap.Int("answered", len(report.Results)),
		zap.Int("total", len(queries)),
		zap.String("elapsed", report.Elapsed),
	)

	// Partial reports are still written so finished answers are not lost.
	if err := writeReport(cmd.OutOrStdout(), batchOutput, report); err != nil {
		return err
	}
	if runErr != nil {
		return fmt.Errorf("batch aborted: %w", runErr)
	}
	return nil
}

func writeReport(stdout io.Writer, path string, report usecase.BatchReport) error {
	if path == "" {
		return printJSON(stdout, report)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()
	if err := printJSON(f, report); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %d results to %s\n", len(report.Results), path)
	return nil
}
