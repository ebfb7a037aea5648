package tools

import (
	"flag"

	"github.com/golang/glog"
	"github.com/spf13/viper"
)

const (
	CommandHull      = "hull"
	CommandCrossings = "crossings"
	CommandQuery     = "query"
)

type FlagsGlobal struct {
	Help    *bool   `json:"help"`
	Version *bool   `json:"version"`
	Config  *string `json:"config"`
}

type InputFlags struct {
	Input                     *string `json:"input"`
	Srid                      *int    `json:"srid"`
	FolderProcessing          *bool   `json:"folder"`
	RecursiveFolderProcessing *bool   `json:"recursive"`
}

type OutputFlags struct {
	Output       *string `json:"output"`
	Silent       *bool   `json:"silent"`
	LogTimestamp *bool   `json:"timestamp"`
	Help         *bool   `json:"help"`
	Version      *bool   `json:"version"`
}

type FlagsForCommandHull struct {
	InputFlags
	OutputFlags
	ToleranceNM *float64 `json:"tolerance_nm"`
}

type FlagsForCommandCrossings struct {
	InputFlags
	OutputFlags
	Path        *string  `json:"path"`
	UseIndex    *bool    `json:"use_index"`
	ToleranceNM *float64 `json:"tolerance_nm"`
}

type FlagsForCommandQuery struct {
	InputFlags
	OutputFlags
	Queries     *string  `json:"queries"`
	Buckets     *int     `json:"buckets"`
	MarginNM    *float64 `json:"margin_nm"`
	Exact       *bool    `json:"exact"`
	ToleranceNM *float64 `json:"tolerance_nm"`
	Workers     *int     `json:"workers"`
}

func ParseFlagsGlobal() FlagsGlobal {
	help := defineBoolFlag("help", "h", false, "Displays this help.")
	// -v is the glog verbosity
	version := defineBoolFlag("version", "", false, "Displays the version of geo_extents.")
	config := defineStringFlag("config", "c", "", "Config file providing defaults for the command flags.")

	flag.Parse()

	return FlagsGlobal{
		Help:    help,
		Version: version,
		Config:  config,
	}
}

func ParseFlagsForCommandHull(args []string, conf *viper.Viper) FlagsForCommandHull {
	glog.V(1).Infoln(FmtJSONString(args))

	flagCommand := flag.NewFlagSet("command-hull", flag.ExitOnError)

	inputFlags := defineInputFlags(flagCommand, conf)
	outputFlags := defineOutputFlags(flagCommand, "Specifies the output GeoJSON file of the hull. Defaults to stdout.")
	toleranceNM := defineFloat64FlagCommand(flagCommand, "tolerance-nm", "t", conf.GetFloat64(ConfigToleranceNM), "Points closer than this distance, in nautical miles, are merged.")

	flagCommand.Parse(args)

	return FlagsForCommandHull{
		InputFlags:  inputFlags,
		OutputFlags: outputFlags,
		ToleranceNM: toleranceNM,
	}
}

func ParseFlagsForCommandCrossings(args []string, conf *viper.Viper) FlagsForCommandCrossings {
	glog.V(1).Infoln(FmtJSONString(args))

	flagCommand := flag.NewFlagSet("command-crossings", flag.ExitOnError)

	inputFlags := defineInputFlags(flagCommand, conf)
	outputFlags := defineOutputFlags(flagCommand, "Specifies the output GeoJSON file of the crossing points. Defaults to stdout.")
	path := defineStringFlagCommand(flagCommand, "path", "p", "", "Specifies the GeoJSON file holding the path as a LineString.")
	useIndex := defineBoolFlagCommand(flagCommand, "use-index", "x", false, "Pre-filters the regions crossed by each path segment with a longitude index.")
	toleranceNM := defineFloat64FlagCommand(flagCommand, "tolerance-nm", "t", conf.GetFloat64(ConfigToleranceNM), "Regions farther than this distance, in nautical miles, from a path segment are skipped.")

	flagCommand.Parse(args)

	return FlagsForCommandCrossings{
		InputFlags:  inputFlags,
		OutputFlags: outputFlags,
		Path:        path,
		UseIndex:    useIndex,
		ToleranceNM: toleranceNM,
	}
}

func ParseFlagsForCommandQuery(args []string, conf *viper.Viper) FlagsForCommandQuery {
	glog.V(1).Infoln(FmtJSONString(args))

	flagCommand := flag.NewFlagSet("command-query", flag.ExitOnError)

	inputFlags := defineInputFlags(flagCommand, conf)
	outputFlags := defineOutputFlags(flagCommand, "Specifies the output GeoJSON file of the query results. Defaults to stdout.")
	queries := defineStringFlagCommand(flagCommand, "queries", "q", "", "Specifies the GeoJSON file holding the query shapes.")
	buckets := defineIntFlagCommand(flagCommand, "buckets", "b", conf.GetInt(ConfigBuckets), "Number of longitude buckets of the index.")
	marginNM := defineFloat64FlagCommand(flagCommand, "margin-nm", "m", conf.GetFloat64(ConfigMarginNM), "Extra radius, in nautical miles, added to every indexed extent.")
	exact := defineBoolFlagCommand(flagCommand, "exact", "x", false, "Drops the candidates that do not actually intersect the query shape.")
	toleranceNM := defineFloat64FlagCommand(flagCommand, "tolerance-nm", "t", conf.GetFloat64(ConfigToleranceNM), "Tolerance, in nautical miles, of the exact intersection test.")
	workers := defineIntFlagCommand(flagCommand, "workers", "w", conf.GetInt(ConfigWorkers), "Number of concurrent query workers. Defaults to one per CPU.")

	flagCommand.Parse(args)

	return FlagsForCommandQuery{
		InputFlags:  inputFlags,
		OutputFlags: outputFlags,
		Queries:     queries,
		Buckets:     buckets,
		MarginNM:    marginNM,
		Exact:       exact,
		ToleranceNM: toleranceNM,
		Workers:     workers,
	}
}

func defineInputFlags(flagCommand *flag.FlagSet, conf *viper.Viper) InputFlags {
	return InputFlags{
		Input:                     defineStringFlagCommand(flagCommand, "input", "i", "", "Specifies the input GeoJSON file/folder."),
		Srid:                      defineIntFlagCommand(flagCommand, "srid", "e", conf.GetInt(ConfigSrid), "EPSG srid code of input coordinates."),
		FolderProcessing:          defineBoolFlagCommand(flagCommand, "folder", "f", false, "Enables processing of all GeoJSON files from input folder. Input must be a folder if specified"),
		RecursiveFolderProcessing: defineBoolFlagCommand(flagCommand, "recursive", "r", false, "Enables recursive lookup for all GeoJSON files inside the subfolders"),
	}
}

func defineOutputFlags(flagCommand *flag.FlagSet, outputUsage string) OutputFlags {
	return OutputFlags{
		Output:       defineStringFlagCommand(flagCommand, "output", "o", "", outputUsage),
		Silent:       defineBoolFlagCommand(flagCommand, "silent", "s", false, "Use to suppress all the non-error messages."),
		LogTimestamp: defineBoolFlagCommand(flagCommand, "timestamp", "", false, "Adds timestamp to log messages."),
		Help:         defineBoolFlagCommand(flagCommand, "help", "h", false, "Displays this help."),
		Version:      defineBoolFlagCommand(flagCommand, "version", "v", false, "Displays the version of geo_extents."),
	}
}

func defineStringFlag(name string, shortHand string, defaultValue string, usage string) *string {
	var output string
	flag.StringVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flag.StringVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}

	return &output
}

func defineBoolFlag(name string, shortHand string, defaultValue bool, usage string) *bool {
	var output bool
	flag.BoolVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flag.BoolVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}

func defineStringFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue string, usage string) *string {
	var output string
	flagCommand.StringVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.StringVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}

	return &output
}

func defineIntFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue int, usage string) *int {
	var output int
	flagCommand.IntVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.IntVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}

	return &output
}

func defineFloat64FlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue float64, usage string) *float64 {
	var output float64
	flagCommand.Float64Var(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.Float64Var(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}

func defineBoolFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue bool, usage string) *bool {
	var output bool
	flagCommand.BoolVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.BoolVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}
