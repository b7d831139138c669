// Copyright (c) 2019 Siemens AG
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
//
// Author(s): Jonas Plum

package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/forensicanalysis/wxtimeline"
	"github.com/forensicanalysis/wxtimeline/export"
	"github.com/forensicanalysis/wxtimeline/internal/config"
)

// Parse is the wxtimeline parse commandline subcommand
func Parse() *cobra.Command {
	return parseCommand(afero.NewOsFs())
}

func parseCommand(fs afero.Fs) *cobra.Command {
	var file, outDir, configFile string
	parseCommand := &cobra.Command{
		Use:   "parse",
		Short: "Extract the timeline of an ActivitiesCache.db",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), configFile)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg)

			if _, err := os.Stat(file); os.IsNotExist(err) {
				logger.Error().Str("file", file).Msg("file not found")
				return errors.Wrap(os.ErrNotExist, file)
			}

			names, err := cfg.Names()
			if err != nil {
				return err
			}

			logger.Info().Str("file", file).Msg("processing")
			store, err := wxtimeline.Open(file)
			if err != nil {
				if errors.Is(err, wxtimeline.ErrStoreUnavailable) {
					logger.Error().Str("file", file).Msg("not a sqlite database")
				}
				return err
			}
			defer store.Close()

			normalizer := wxtimeline.NewNormalizer(wxtimeline.Options{
				Names:     names,
				RowErrors: cfg.RowErrorPolicy(),
				Logger:    logger,
			})
			timeline := normalizer.Run(store)

			writer := export.NewWriter(fs, outDir, cfg.Format(), cfg.DateTimeFormat)
			paths, err := writer.Write(timeline, export.Profile(file))
			if err != nil {
				return err
			}
			for _, path := range paths {
				logger.Debug().Str("path", path).Msg("written")
			}
			logger.Info().Str("dir", outDir).Msg("results saved")
			return nil
		},
	}
	parseCommand.Flags().StringVarP(&file, "file", "f", "", "ActivitiesCache.db to process")
	parseCommand.Flags().StringVar(&outDir, "csv", "", "directory to save results to")
	parseCommand.Flags().StringVar(&configFile, "config", "", "config file (default ./wxtimeline.yaml)")
	parseCommand.Flags().String("dt", export.DefaultLayout, "Go time layout of timestamps")
	parseCommand.Flags().String("on-row-error", string(wxtimeline.AbortTable), "abort or skip a table on undecodable rows")
	parseCommand.Flags().Bool("json", false, "write JSON lines instead of CSV")
	parseCommand.Flags().Bool("debug", false, "show debug information")
	parseCommand.Flags().Bool("trace", false, "show trace information")
	_ = parseCommand.MarkFlagRequired("file")
	_ = parseCommand.MarkFlagRequired("csv")
	return parseCommand
}

// Tables is the wxtimeline tables commandline subcommand
func Tables() *cobra.Command {
	return &cobra.Command{
		Use:   "tables <ActivitiesCache.db>",
		Short: "List the timeline tables of an ActivitiesCache.db",
		Args:  requireOneStore,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := wxtimeline.Open(args[0])
			if err != nil {
				return err
			}
			defer store.Close()
			return printTables(cmd.OutOrStdout(), store)
		},
	}
}

func printTables(out io.Writer, store *wxtimeline.Store) error {
	version, err := store.UserVersion()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "user_version: %d\n", version)

	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "TABLE\tROWS\tSCHEMA")
	for _, table := range wxtimeline.Tables {
		columns, err := store.Columns(table)
		if errors.Is(err, wxtimeline.ErrTableMissing) {
			fmt.Fprintf(w, "%s\t-\t-\n", table)
			continue
		}
		if err != nil {
			return err
		}
		count, err := store.Count(table)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%d\n", table, count, wxtimeline.DetectSchema(columns).Version)
	}
	return w.Flush()
}

func newLogger(out io.Writer, cfg *config.Config) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case cfg.Trace:
		level = zerolog.TraceLevel
	case cfg.Debug:
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}).Level(level).With().Timestamp().Logger()
}

func requireOneStore(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("requires exactly one store")
	}
	for _, arg := range args {
		if _, err := os.Stat(arg); os.IsNotExist(err) {
			return errors.Wrap(os.ErrNotExist, arg)
		}
	}
	return nil
}
