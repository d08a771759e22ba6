package cmd

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/catshell/catsh/core"
	"github.com/catshell/catsh/core/history"
	"github.com/catshell/catsh/core/logger"
)

// runCmd starts the interpreter on the current terminal.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interpreter on the current terminal.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		eventLog := logger.Discard()
		if logFd, err := configuration.OpenAppLog(); err == nil {
			defer logFd.Close()
			eventLog = logger.NewJSONLinesRecorder(logFd)
		} else {
			log.Printf("event log disabled: %v", err)
		}

		isPTY := isatty.IsTerminal(os.Stdin.Fd())

		sessionLog := eventLog.NewSession()
		sessionLog.Record(&logger.SessionStart{
			User:     os.Getenv("USER"),
			Terminal: os.Getenv("TERM"),
			IsPTY:    isPTY,
		})
		defer sessionLog.Record(&logger.SessionEnd{})

		// color.GreenString degrades to plain text when stdout isn't a tty.
		configuration.Prompt = color.GreenString(configuration.Prompt)

		sh, err := core.NewShell(configuration, core.IO{
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
			IsPTY:  isPTY,
		}, sessionLog)
		if err != nil {
			return err
		}
		defer sh.Close()

		if path := configuration.HistoryFile; path != "" {
			ring, err := history.Load(configuration.Fs(), path, configuration.HistorySize)
			if err != nil {
				return err
			}
			sh.History = ring
			defer func() {
				if err := sh.History.Save(configuration.Fs(), path); err != nil {
					log.Printf("saving history: %v", err)
				}
			}()
		}

		sh.Run()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
