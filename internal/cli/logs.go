package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/genpozi/poziverse/internal/app"
	"github.com/genpozi/poziverse/internal/logtail"
)

const defaultLogLines = 50

func newLogsCmd(opts *app.Options) *cobra.Command {
	var (
		lines int
		raw   bool
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the end of the poziverse log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.ResolveConfig(*opts)
			if err != nil {
				return err
			}
			if cfg.LogFile == "" {
				return errors.New("logging is disabled (log_file is empty)")
			}
			entries, err := logtail.Read(cfg.LogFile, lines)
			if err != nil {
				return err
			}
			if !raw {
				entries = logtail.FormatLines(entries)
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				_, _ = fmt.Fprintf(out, "no log entries in %s\n", cfg.LogFile)
				return nil
			}
			for _, line := range entries {
				_, _ = fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", defaultLogLines, "number of lines to show (0 for all)")
	cmd.Flags().BoolVar(&raw, "raw", false, "print JSON lines as written")

	return cmd
}
