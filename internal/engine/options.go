package engine

import "strings"

type Command string

const (
	// Computes the convex hull of every extent read from the input files.
	CommandHull Command = "HULL"

	// Walks a path over the regions read from the input files and reports every point where it enters or
	// leaves one of them.
	CommandCrossings Command = "CROSSINGS"

	// Loads the input extents in a longitude bucketed index and returns, for every query shape, the extents
	// that might intersect it.
	CommandQuery Command = "QUERY"
)

func (c Command) String() string {
	return strings.ToLower(string(c))
}

func ParseCommand(value string) Command {
	normalizedValue := strings.Trim(strings.ToUpper(value), " ")
	switch Command(normalizedValue) {
	case CommandHull, CommandCrossings, CommandQuery:
		return Command(normalizedValue)
	}
	return ""
}

// Contains the options shared by every command
type Options struct {
	Input            string // Input GeoJSON file/folder
	Srid             int    // EPSG code for SRID of input coordinates
	FolderProcessing bool   // Enables the processing of all GeoJSON files in folder
	Recursive        bool   // Recursive lookup of GeoJSON files in subfolders

	Command          Command
	HullOptions      *HullOptions
	CrossingsOptions *CrossingsOptions
	QueryOptions     *QueryOptions
}

type HullOptions struct {
	Output      string  // Output GeoJSON file, stdout if empty
	ToleranceNM float64 // Points closer than this are merged
}

type CrossingsOptions struct {
	Path        string  // GeoJSON file holding the path
	Output      string  // Output GeoJSON file, stdout if empty
	UseIndex    bool    // Pre-filters the regions with an extent index
	ToleranceNM float64 // Distance from a boundary under which a region is examined
}

type QueryOptions struct {
	Queries     string  // GeoJSON file holding the query shapes
	Output      string  // Output GeoJSON file, stdout if empty
	Buckets     int     // Number of longitude buckets
	MarginNM    float64 // Extra radius added to every indexed extent
	Exact       bool    // Drops candidates that do not actually intersect the query
	ToleranceNM float64 // Tolerance in nautical miles of the exact intersection test
	Workers     int     // Concurrent query workers, one per CPU if not positive
}

func (opt *Options) Copy() *Options {
	newOpt := &Options{
		Input:            opt.Input,
		Srid:             opt.Srid,
		FolderProcessing: opt.FolderProcessing,
		Recursive:        opt.Recursive,
		Command:          opt.Command,
	}

	if opt.HullOptions != nil {
		hullOpt := *opt.HullOptions
		newOpt.HullOptions = &hullOpt
	}

	if opt.CrossingsOptions != nil {
		crossingsOpt := *opt.CrossingsOptions
		newOpt.CrossingsOptions = &crossingsOpt
	}

	if opt.QueryOptions != nil {
		queryOpt := *opt.QueryOptions
		newOpt.QueryOptions = &queryOpt
	}

	return newOpt
}
