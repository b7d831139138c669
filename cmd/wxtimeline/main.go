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

// Package wxtimeline implements the wxtimeline command line tool that extracts
// Windows Timeline activities from an ActivitiesCache.db.
//     parse     Normalize all timeline tables and write CSV or JSON lines files
//     tables    List the timeline tables, their row counts and schema versions
//
// Usage
//
// Parse a timeline database
//     wxtimeline parse -f C:\Users\eric\AppData\Local\ConnectedDevicesPlatform\L.eric\ActivitiesCache.db --csv out
// Write JSON lines with ISO timestamps
//     wxtimeline parse -f ActivitiesCache.db --csv out --json --dt 2006-01-02T15:04:05Z07:00
// Inspect a database
//     wxtimeline tables ActivitiesCache.db
//
// Settings can also be given as WXT_ environment variables or in a
// wxtimeline.yaml, which may map additional GUIDs to names:
//     guids:
//       "{F38BF404-1D43-42F2-9305-67DE0B28FC23}": Windows
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/forensicanalysis/wxtimeline/cmd"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	})

	rootCmd := &cobra.Command{
		Use:           "wxtimeline",
		Short:         "Extract the Windows Timeline from ActivitiesCache.db files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(cmd.Parse(), cmd.Tables())
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
