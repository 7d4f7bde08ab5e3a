// Package cmd implements the svqdemo command-line tool: seal and open a
// secret behind a configurable set of security questions.
package cmd

import (
	"os"

	"github.com/google/uuid"
	"github.com/jpfluger/svaroq/alog"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagQuestionCount uint8
	flagThreshold     uint8
	flagVerbose       bool
	flagLogDir        string
)

var rootCmd = &cobra.Command{
	Use:   "svqdemo",
	Short: "Seal and recover a secret behind a set of security questions",
	Long: `svqdemo demonstrates the security-questions sealed-secret envelope:
given N questions and a threshold M, it wraps a secret so that any M
correctly-answered questions out of N can recover it later.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogging(flagVerbose)
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Uint8Var(&flagQuestionCount, "questions", 6, "number of security questions (N)")
	rootCmd.PersistentFlags().Uint8Var(&flagThreshold, "threshold", 4, "minimum correct answers required (M)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogDir, "log-dir", "", "also write rotating log files to this directory")
}

func initLogging(verbose bool) {
	level := "err"
	if verbose {
		level = "debug"
	}

	writerTypes := alog.WriterTypes{alog.WRITERTYPE_CONSOLE_STDERR}
	prov := &alog.ChannelProvisioner{App: "svqdemo", Svr: "cli"}
	if flagLogDir != "" {
		writerTypes = append(writerTypes, alog.WRITERTYPE_FILE)
		prov.DirLog = flagLogDir
	}

	channels := alog.Channels{
		{Name: alog.LOGGER_APP, LogLevel: level, WriterTypes: writerTypes},
	}

	_ = alog.SetGlobalLogger(zerolog.TimeFormatUnix, channels, prov)
}

func logger() *zerolog.Logger {
	return alog.LOGGER(alog.LOGGER_APP)
}

// runID is a per-invocation correlation id, minted once per CLI run and
// attached to every log line so a user can grep a single run out of a
// shared log stream. It never enters the sealed container or its keys.
var runID = uuid.NewString()
