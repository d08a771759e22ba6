package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/catshell/catsh/core/logger"
)

var logsCmd = &cobra.Command{
	Use:     "logs",
	Aliases: []string{"log"},
	Short:   "Explore the interpreter's event logs.",
}

var reportCmd = &cobra.Command{
	Use:   "report [LOGFILE]",
	Short: "Summarize an event log.",
	Long: `Aggregates a JSON-lines event log into command and recall statistics.
With no argument, reads the app log from the config directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		var source io.ReadCloser
		if len(args) == 1 {
			fd, err := os.Open(args[0])
			if err != nil {
				return err
			}
			source = fd
		} else {
			configuration, err := loadConfig()
			if err != nil {
				return err
			}
			fd, err := configuration.ReadAppLog()
			if err != nil {
				return err
			}
			source = fd
		}
		defer source.Close()

		report := &logger.Report{}
		if err := logger.ReadJSONLinesLog(source, report.Update); err != nil {
			return err
		}

		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(reportCmd)
}
