// Package cli implements the recordtable command.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjaus/recordtable"
	"github.com/bjaus/recordtable/internal/logging"
	"github.com/bjaus/recordtable/yamlrecord"
)

// App holds the streams the command reads from and writes to.
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// styledRecord attaches the --border choice to a decoded record.
type styledRecord struct {
	yamlrecord.Record
	style recordtable.BorderStyle
}

func (r styledRecord) Border() recordtable.BorderStyle { return r.style }

// Execute runs the command with args.
//
// Logging is configured before the command runs, so errors from flag parsing
// are reported with the handler --log-json asks for. Flags after the first
// unparsable one are not seen at that point.
func Execute(ctx context.Context, app *App, args []string) error {
	cmd := NewRootCmd(app)
	cmd.SetArgs(args)
	_ = cmd.ParseFlags(args)
	setupLogging(cmd, app.Stderr)
	return cmd.ExecuteContext(ctx)
}

func setupLogging(cmd *cobra.Command, w io.Writer) {
	debugMode, _ := cmd.Flags().GetBool("debug")
	logJSON, _ := cmd.Flags().GetBool("log-json")
	if logJSON {
		logging.SetupJSON(debugMode, w)
	} else {
		logging.Setup(debugMode, w)
	}
}

// NewRootCmd builds the root command.
func NewRootCmd(app *App) *cobra.Command {
	var (
		file      string
		border    string
		debugMode bool
		logJSON   bool
	)

	cmd := &cobra.Command{
		Use:           "recordtable",
		Short:         "Render a YAML list of records as a text table",
		Long:          "Reads a YAML sequence of flat mappings and writes it to stdout as a ruled text table.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			style, err := recordtable.ParseBorder(border)
			if err != nil {
				return err
			}

			in := app.Stdin
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			records, err := yamlrecord.Decode(in)
			if err != nil {
				return fmt.Errorf("decode %s: %w", inputName(file), err)
			}
			slog.Debug("decoded records", "source", inputName(file), "count", len(records))

			styled := make([]styledRecord, len(records))
			for i, rec := range records {
				styled[i] = styledRecord{Record: rec, style: style}
			}
			return recordtable.WriteTable(app.Stdout, styled)
		},
	}

	cmd.SetIn(app.Stdin)
	cmd.SetOut(app.Stdout)
	cmd.SetErr(app.Stderr)

	flags := cmd.Flags()
	flags.StringVarP(&file, "file", "f", "", "YAML file to read (default stdin)")
	flags.StringVar(&border, "border", recordtable.BorderASCII.String(), "border style: ascii, rounded, heavy, double")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log as JSON")
	return cmd
}

func inputName(file string) string {
	if file == "" || file == "-" {
		return "stdin"
	}
	return file
}
