/*
 * This file is part of the Go Cesium Point Cloud Tiler distribution (https://github.com/mfbonfigli/gocesiumtiler).
 * Copyright (c) 2019 Massimo Federico Bonfigli - m.federico.bonfigli@gmail.com
 *
 * This program is free software; you can redistribute it and/or modify it
 * under the terms of the GNU Lesser General Public License Version 3 as
 * published by the Free Software Foundation;
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * Lesser General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program. If not, see <http://www.gnu.org/licenses/>.
 *
 * This software also uses third party components. You can find information
 * on their credits and licensing in the file LICENSE-3RD-PARTIES.md that
 * you should have received togheter with the source code.
 */

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang/glog"

	"github.com/ecopia-map/geo_extents/internal/engine"
	"github.com/ecopia-map/geo_extents/pkg"
	"github.com/ecopia-map/geo_extents/pkg/algorithm_manager/std_algorithm_manager"
	"github.com/ecopia-map/geo_extents/tools"
)

const VERSION = "1.0.0"

const logo = `
                                  _             _
  __ _  ___  ___     _____  _| |_ ___ _ __ | |_ ___
 / _  |/ _ \/ _ \   / _ \ \/ / __/ _ \ '_ \| __/ __|
| (_| |  __/ (_) | |  __/>  <| ||  __/ | | | |_\__ \
 \__, |\___|\___/   \___/_/\_\\__\___|_| |_|\__|___/
  __| | Spherical extents: hulls, crossings and indexed queries
 |___/  Copyright YYYY
`

func main() {
	flagsGlobal := tools.ParseFlagsGlobal()
	defer glog.Flush()

	if *flagsGlobal.Help {
		showHelp()
		return
	}
	if *flagsGlobal.Version {
		printVersion()
		return
	}

	conf, err := tools.LoadConfig(*flagsGlobal.Config)
	if err != nil {
		glog.Fatal(err)
	}

	args := flag.Args()
	if len(args) == 0 {
		glog.Fatal("Please specify a subcommand [hull|crossings|query].")
	}
	cmd, args := args[0], args[1:]

	var opts *engine.Options
	var output tools.OutputFlags
	switch engine.ParseCommand(cmd) {
	case engine.CommandHull:
		flags := tools.ParseFlagsForCommandHull(args, conf)
		output = flags.OutputFlags
		opts = inputOptions(flags.InputFlags, engine.CommandHull)
		opts.HullOptions = &engine.HullOptions{
			Output:      *flags.Output,
			ToleranceNM: *flags.ToleranceNM,
		}
	case engine.CommandCrossings:
		flags := tools.ParseFlagsForCommandCrossings(args, conf)
		output = flags.OutputFlags
		opts = inputOptions(flags.InputFlags, engine.CommandCrossings)
		opts.CrossingsOptions = &engine.CrossingsOptions{
			Path:        *flags.Path,
			Output:      *flags.Output,
			UseIndex:    *flags.UseIndex,
			ToleranceNM: *flags.ToleranceNM,
		}
	case engine.CommandQuery:
		flags := tools.ParseFlagsForCommandQuery(args, conf)
		output = flags.OutputFlags
		opts = inputOptions(flags.InputFlags, engine.CommandQuery)
		opts.QueryOptions = &engine.QueryOptions{
			Queries:     *flags.Queries,
			Output:      *flags.Output,
			Buckets:     *flags.Buckets,
			MarginNM:    *flags.MarginNM,
			Exact:       *flags.Exact,
			ToleranceNM: *flags.ToleranceNM,
			Workers:     *flags.Workers,
		}
	default:
		glog.Fatalf("Unrecognized command [%q]. Command must be one of [hull|crossings|query]", cmd)
	}

	// Prints the command line flag description
	if *output.Help {
		showHelp()
		return
	}

	if *output.Version {
		printVersion()
		return
	}

	// set logging and timestamp logging
	if *output.Silent {
		tools.DisableLogger()
	} else {
		tools.EnableLogger()
		printLogo()
	}
	if *output.LogTimestamp {
		tools.EnableLoggerTimestamp()
	} else {
		tools.DisableLoggerTimestamp()
	}

	glog.V(1).Infoln(tools.FmtJSONString(opts))

	if msg, res := validateOptions(opts); !res {
		glog.Fatal("Error parsing input parameters: " + msg)
	}

	defer timeTrack(time.Now(), opts.Command.String())

	if err := newTask(opts).Run(opts); err != nil {
		glog.Fatalf("Error while running %s: %+v", opts.Command, err)
	}
	tools.LogOutput("Processing Completed")
}

func inputOptions(flags tools.InputFlags, command engine.Command) *engine.Options {
	return &engine.Options{
		Input:            *flags.Input,
		Srid:             *flags.Srid,
		FolderProcessing: *flags.FolderProcessing,
		Recursive:        *flags.RecursiveFolderProcessing,
		Command:          command,
	}
}

func newTask(opts *engine.Options) pkg.ITask {
	fileFinder := tools.NewStandardFileFinder()
	algorithmManager := std_algorithm_manager.NewAlgorithmManager(opts)

	switch opts.Command {
	case engine.CommandCrossings:
		return pkg.NewCrossingsTask(fileFinder, algorithmManager)
	case engine.CommandQuery:
		return pkg.NewQueryTask(fileFinder, algorithmManager)
	}
	return pkg.NewHullTask(fileFinder, algorithmManager)
}

// Validates the input options provided to the command line tool checking
// that input files/folders exist
func validateOptions(opts *engine.Options) (string, bool) {
	if _, err := os.Stat(opts.Input); os.IsNotExist(err) {
		return "Input file/folder not found", false
	}

	switch opts.Command {
	case engine.CommandHull:
		if opts.HullOptions.ToleranceNM < 0 {
			return "tolerance-nm cannot be negative", false
		}
	case engine.CommandCrossings:
		if _, err := os.Stat(opts.CrossingsOptions.Path); os.IsNotExist(err) {
			return "Path file not found", false
		}
		if opts.CrossingsOptions.ToleranceNM < 0 {
			return "tolerance-nm cannot be negative", false
		}
	case engine.CommandQuery:
		if _, err := os.Stat(opts.QueryOptions.Queries); os.IsNotExist(err) {
			return "Queries file not found", false
		}
		if opts.QueryOptions.Buckets < 1 {
			return "buckets must be at least 1", false
		}
		if opts.QueryOptions.MarginNM < 0 || opts.QueryOptions.ToleranceNM < 0 {
			return "margin-nm and tolerance-nm cannot be negative", false
		}
	}

	return "", true
}

func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	tools.LogOutput(fmt.Sprintf("%s took %s", name, elapsed))
}

func printLogo() {
	fmt.Println(strings.ReplaceAll(logo, "YYYY", strconv.Itoa(time.Now().Year())))
}

func showHelp() {
	printLogo()
	fmt.Println("***")
	fmt.Println("geo_extents computes convex hulls, boundary crossings and candidate intersections of points, paths and regions on the earth sphere")
	printVersion()
	fmt.Println("***")
	fmt.Println("")
	fmt.Println("Usage: geo_extents [flags] <hull|crossings|query> [command flags]")
	fmt.Println("")
	fmt.Println("Command line flags: ")
	flag.CommandLine.SetOutput(os.Stdout)
	flag.PrintDefaults()
}

func printVersion() {
	fmt.Println("v." + VERSION)
}
