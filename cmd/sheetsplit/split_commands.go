package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ukaji3/sheetsplit-go/internal/config"
	"github.com/ukaji3/sheetsplit-go/pkg/sheetsplit"
	"github.com/ukaji3/sheetsplit-go/pkg/sheetsplit/models"
)

// splitFlags holds per-command overrides of the configuration file.
type splitFlags struct {
	inputDir  string
	outputDir string
	inputFile string
	prefix    string
	maxRows   int
	sheet     string
	json      bool
}

func (f *splitFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.inputDir, "input-dir", "i", "", "Directory holding the input workbook")
	flags.StringVarP(&f.outputDir, "output-dir", "o", "", "Directory receiving the part files")
	flags.StringVar(&f.inputFile, "input-file", "", "Input workbook name inside the input directory")
	flags.StringVarP(&f.prefix, "prefix", "p", "", "Part file name prefix")
	flags.IntVarP(&f.maxRows, "max-rows", "n", 0, "Maximum data rows per part file")
	flags.StringVar(&f.sheet, "sheet", "", "Worksheet to split (default: first sheet)")
	flags.BoolVar(&f.json, "json", false, "Print the result as JSON")
}

func (f *splitFlags) overrides(cmd *cobra.Command) config.Overrides {
	var o config.Overrides
	flags := cmd.Flags()
	if flags.Changed("input-dir") {
		o.InputDir = &f.inputDir
	}
	if flags.Changed("output-dir") {
		o.OutputDir = &f.outputDir
	}
	if flags.Changed("input-file") {
		o.InputFile = &f.inputFile
	}
	if flags.Changed("prefix") {
		o.Prefix = &f.prefix
	}
	if flags.Changed("max-rows") {
		o.MaxRows = &f.maxRows
	}
	if flags.Changed("sheet") {
		o.Sheet = &f.sheet
	}
	return o
}

func newRunCommand(app *cliContext) *cobra.Command {
	var flags splitFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Back up previous outputs and split the input workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, app, &flags, false)
		},
	}
	flags.bind(cmd)
	return cmd
}

func newPlanCommand(app *cliContext) *cobra.Command {
	var flags splitFlags
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the part files a run would write, without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, app, &flags, true)
		},
	}
	flags.bind(cmd)
	return cmd
}

func runSplit(cmd *cobra.Command, app *cliContext, flags *splitFlags, dryRun bool) error {
	cfg, err := app.loadConfig(flags.overrides(cmd))
	if err != nil {
		return err
	}

	runCfg := cfg.RunConfig()
	runCfg.Logger = app.logger
	runCfg.Now = app.now
	runCfg.DryRun = dryRun

	result, err := sheetsplit.Run(cmd.Context(), runCfg)
	if err != nil {
		return err
	}

	if flags.json {
		return writeJSON(app.stdout, result)
	}
	writeSummary(app.stdout, result, cfg.Split.Prefix)
	return nil
}

func writeSummary(w io.Writer, result *models.RunResult, prefix string) {
	verb := "Split"
	if result.DryRun {
		verb = "Would split"
	}
	fmt.Fprintf(w, "%s %s data rows of sheet %q into %d part(s)\n",
		verb, humanize.Comma(int64(result.Sheet.DataRows())), result.Sheet.Name, len(result.Plan))
	if result.Backup != nil {
		fmt.Fprintf(w, "Moved %d previous file(s) to %s\n", len(result.Backup.Files), result.Backup.Dir)
	}
	if len(result.Plan) == 0 {
		return
	}

	if result.DryRun {
		stamp := result.Timestamp.Format(sheetsplit.TimestampLayout)
		fmt.Fprintln(w, renderTable(planHeaders, planRows(result.Plan, prefix, stamp), planAligns))
		return
	}
	fmt.Fprintln(w, renderTable(outputHeaders, outputRows(result.Outputs), outputAligns))
}
