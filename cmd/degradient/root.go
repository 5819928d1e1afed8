// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/walteh/degradient/cmd/degradient/commands"
	"github.com/walteh/degradient/cmd/degradient/opts"
	"github.com/walteh/degradient/pkg/config"
	"github.com/walteh/degradient/pkg/log"
)

const (
	envPrefix = "DEGRADIENT"

	configFlagName  = "config"
	baseFlagName    = "base"
	rootFlagName    = "root"
	dryRunFlagName  = "dry-run"
	workersFlagName = "workers"
	asyncFlagName   = "async"
	debugFlagName   = "debug"
	logFileFlagName = "log-file"

	logMaxSize    = 10
	logMaxBackups = 3
	logMaxAge     = 28
)

// newRootCmd builds the command tree. Console lines go to out, structured
// logs to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	ro := &opts.RootOpts{
		Out: out,
		Fs:  afero.NewOsFs(),
	}

	var logFile io.Closer

	cmd := &cobra.Command{
		Use:   "degradient",
		Short: "Replace gradient utility classes with solid colours and glows",
		Long: `degradient rewrites the .tsx sources of a web frontend, replacing a fixed
list of gradient class strings with solid colour and glow classes, then
reports how many gradient classes are left.

Running degradient without a command is the same as "degradient run".`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, closer := newLogger(v, errOut)
			logFile = closer

			ctx := logger.WithContext(cmd.Context())
			ctx = log.NewContext(ctx, log.New(out, logger))
			cmd.SetContext(ctx)

			cfg, err := config.Load(ctx, v.GetString(configFlagName), overrides(v)...)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}

			logger.Debug().Stringer("config", cfg).Msg("starting")

			ro.Config = cfg
			ro.Async = v.GetBool(asyncFlagName)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logFile != nil {
				return logFile.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Rewrite(cmd, ro)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringP(configFlagName, "c", "", "config file (.yaml, .yml, .json or .hcl)")
	flags.String(baseFlagName, "", "frontend directory the roots are relative to (default \".\")")
	flags.StringArray(rootFlagName, nil, "tree to rewrite, repeatable (default app and components)")
	flags.Bool(dryRunFlagName, false, "report changes without writing")
	flags.Int(workersFlagName, 0, "marker count concurrency, 0 for one per CPU")
	flags.Bool(asyncFlagName, false, "run the operation in its own goroutine")
	flags.BoolP(debugFlagName, "d", false, "enable debug logging")
	flags.String(logFileFlagName, "", "also write structured logs to this rotating file")

	for _, name := range []string{
		configFlagName, baseFlagName, rootFlagName, dryRunFlagName,
		workersFlagName, asyncFlagName, debugFlagName, logFileFlagName,
	} {
		bindFlag(v, flags.Lookup(name), name)
	}

	cmd.AddCommand(
		commands.NewRunCmd(ro),
		commands.NewCountCmd(ro),
		commands.NewLintCmd(ro),
		commands.NewRulesCmd(ro),
		newVersionCmd(out),
	)

	return cmd
}

// bindFlag wires a flag to a viper key so env values feed the flag
func bindFlag(v *viper.Viper, flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(errors.Errorf("flag for key %q not found", key))
		return
	}
	cobra.CheckErr(v.BindPFlag(key, flag))
}

// overrides turns the flags and env values that were actually set into
// config options
func overrides(v *viper.Viper) []config.Option {
	var out []config.Option
	if v.IsSet(baseFlagName) {
		base := v.GetString(baseFlagName)
		out = append(out, func(c *config.Config) { c.Base = base })
	}
	if roots := v.GetStringSlice(rootFlagName); len(roots) > 0 {
		out = append(out, func(c *config.Config) {
			c.Roots = roots
			c.MarkerRoots = nil
		})
	}
	if v.GetBool(dryRunFlagName) {
		out = append(out, func(c *config.Config) { c.DryRun = true })
	}
	if v.IsSet(workersFlagName) {
		workers := v.GetInt(workersFlagName)
		out = append(out, func(c *config.Config) { c.Workers = workers })
	}
	return out
}

// newLogger builds the structured logger. Warnings go to errOut, or
// everything with --debug. With --log-file the records go to a rotating file
// instead, from info level up. The returned closer is nil without a log file.
func newLogger(v *viper.Viper, errOut io.Writer) (zerolog.Logger, io.Closer) {
	level := zerolog.WarnLevel
	var w io.Writer = zerolog.ConsoleWriter{Out: errOut, NoColor: color.NoColor}
	var closer io.Closer

	if path := v.GetString(logFileFlagName); path != "" {
		file := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   true,
		}
		w = file
		closer = file
		level = zerolog.InfoLevel
	}

	if v.GetBool(debugFlagName) {
		level = zerolog.DebugLevel
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), closer
}
