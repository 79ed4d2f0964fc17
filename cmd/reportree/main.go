// Command reportree demonstrates the report tree: it builds, renders and
// splices trees stored as JSON, YAML or gob.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/montaguethomas/reportree/config"
	"github.com/montaguethomas/reportree/constants"
	"github.com/montaguethomas/reportree/log"
)

var (
	// Global flags
	configPath string
	logLevel   string
	logFile    string
	format     string

	// logOutput is the opened --log-file, if any
	logOutput *os.File

	// cfg is loaded before any subcommand runs
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "reportree",
	Short: "Build, render and splice identifier-addressed report trees",
	Long: `reportree works on report trees: sections, HTML, Markdown and text nodes
addressed by identifier.

Trees are read from and written to JSON, YAML or gob files; the format is
taken from the file extension. Rendering produces an HTML document or a
plain outline.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
		closeLogFile()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn, error or disable")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append log output to this file instead of stderr")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "output format: html, outline, json, yaml or gob")

	rootCmd.AddCommand(demoCmd, renderCmd, spliceCmd)
}

// loadConfig reads the configuration file, lets flags override it and
// applies the log level and destination.
func loadConfig(cmd *cobra.Command, args []string) error {
	c := config.Default()
	if configPath != "" {
		var err error
		if c, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if format != "" {
		c.Format = format
	}
	if err := c.Validate(); err != nil {
		return err
	}

	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.Wrapf(constants.ErrOpenFile, "%q: %s", logFile, err)
		}
		closeLogFile()
		logOutput = file
		log.SetOutput(file)
	}

	log.SetLevel(c.Level())
	cfg = c
	return nil
}

// closeLogFile sends logging back to stderr and closes the --log-file.
func closeLogFile() {
	if logOutput == nil {
		return
	}
	log.SetOutput(os.Stderr)
	_ = logOutput.Close()
	logOutput = nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
