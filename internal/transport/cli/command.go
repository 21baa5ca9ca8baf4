package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/reshetovitsme/telegram-export-notes/internal/di"
	"github.com/reshetovitsme/telegram-export-notes/internal/shared/config"
	"github.com/reshetovitsme/telegram-export-notes/internal/shared/logger"
	"github.com/spf13/cobra"
)

type options struct {
	configFile string
	input      string
	output     string
	threshold  string
	timeZone   string
	feed       bool
	noCopy     bool
}

// overrides maps flags the user actually set onto config keys.
func (o *options) overrides(cmd *cobra.Command) map[string]any {
	values := map[string]any{}
	flags := cmd.Flags()

	if flags.Changed("input") {
		values["input_dir"] = o.input
	}
	if flags.Changed("output") {
		values["output_dir"] = o.output
	}
	if flags.Changed("threshold") {
		values["burst_threshold"] = o.threshold
	}
	if flags.Changed("time-zone") {
		values["time_zone"] = o.timeZone
	}
	if flags.Changed("feed") {
		values["feed_enabled"] = o.feed
	}
	if flags.Changed("no-copy") {
		values["copy_folders"] = !o.noCopy
	}

	return values
}

// NewRootCmd creates the tg2notes command.
func NewRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "tg2notes",
		Short: "Convert a Telegram chat export into Markdown notes",
		Long: `tg2notes turns a Telegram "result.json" export into one Markdown note per post.

Messages sent less than two minutes apart are merged into a single post. Notes are
written to notes/{year}/{year}-{MM}-{Month}/ under the output directory and linked
to their neighbours with Back/Next entries in the header.

Settings are read from config.{yaml,yml,json,toml}, then TG2NOTES_* environment
variables, then flags.`,
		Example: `  tg2notes --input ./export --output ./vault
  tg2notes --threshold 90s --time-zone Europe/Moscow --feed`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configFile, opts.overrides(cmd))
			if err != nil {
				return err
			}

			slog.SetDefault(logger.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Verbose()))

			injector, err := di.Setup(cfg)
			if err != nil {
				return err
			}

			report, err := Run(injector)
			if err != nil {
				slog.Error("Export failed", "error", err)
				return err
			}

			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "config file (default: first of config.yaml, config.yml, config.json, config.toml)")
	flags.StringVarP(&opts.input, "input", "i", "input", "directory holding the export and its media folders")
	flags.StringVarP(&opts.output, "output", "o", "output", "directory receiving notes and media folders")
	flags.StringVar(&opts.threshold, "threshold", "2m", "largest gap between messages of one post")
	flags.StringVar(&opts.timeZone, "time-zone", "Local", "time zone of the export timestamps")
	flags.BoolVar(&opts.feed, "feed", false, "also write an RSS feed of the generated notes")
	flags.BoolVar(&opts.noCopy, "no-copy", false, "do not copy media folders into the output directory")

	return cmd
}

func printReport(w io.Writer, report *Report) {
	renderer := lipgloss.NewRenderer(w)
	success := renderer.NewStyle().Foreground(lipgloss.Color("10"))
	failure := renderer.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dim := renderer.NewStyle().Foreground(lipgloss.Color("8"))

	summary := report.Summary
	fmt.Fprintln(w, success.Render(fmt.Sprintf("Exported %d of %d notes from %d messages",
		summary.Succeeded, summary.Total, report.Messages)))

	if len(report.Folders) > 0 {
		fmt.Fprintln(w, dim.Render(fmt.Sprintf("Copied %d media folders", len(report.Folders))))
	}
	if report.FeedPath != "" {
		fmt.Fprintln(w, dim.Render("Feed: "+report.FeedPath))
	}

	if summary.Failed > 0 {
		fmt.Fprintln(w, failure.Render(fmt.Sprintf("%d notes failed", summary.Failed)))
		for _, result := range summary.Failures {
			fmt.Fprintf(w, "  %s: %v\n", result.Note.RelativePath(), result.Err)
		}
	}
}
