/*
	Copyright 2023 Google Inc.
	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at
		https://www.apache.org/licenses/LICENSE-2.0
	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

// Package cli implements the flotviz command-line interface.
//
// # Commands
//
//   - render: render chart files to HTML pages
//   - serve: serve a directory of chart files, rendering them on request
//
// All commands support --verbose (-v) for debug-level logging, and
// --env-file to load environment variables, such as FLOT, from a file.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ilhamster/flotviz/errors"
)

const (
	appName        = "flotviz"
	defaultEnvFile = ".env"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at the specified level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// loadEnv loads environment variables from path.  A missing default env
// file is not an error.
func (c *CLI) loadEnv(path string, explicit bool) error {
	if _, err := os.Stat(path); err != nil && !explicit {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot load env file %s", path)
	}
	c.Logger.Debugf("Loaded environment from %s", path)
	return nil
}

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose bool
		envFile string
	)
	root := &cobra.Command{
		Use:          appName,
		Short:        "flotviz renders flot charts as static HTML pages",
		Long:         `flotviz builds pages of flot charts, described in TOML chart files, into self-contained HTML documents.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			return c.loadEnv(envFile, cmd.Flags().Changed("env-file"))
		},
	}
	root.SetVersionTemplate(appName + " {{.Version}}\ncommit: " + commit + "\nbuilt: " + date + "\n")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&envFile, "env-file", defaultEnvFile, "file of environment variables to load, e.g. FLOT")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	return root
}
