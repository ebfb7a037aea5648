package pipeline

import (
	"github.com/ecopia-map/geo_extents/internal/geomio"
	"github.com/ecopia-map/geo_extents/pkg/extent"
)

// Contains a single query shape and its position among the submitted queries
type WorkUnit struct {
	Position int
	Query    geomio.Feature
}

// Result holds the candidates found for the query of the WorkUnit at Position
type Result struct {
	Position   int
	Query      geomio.Feature
	Candidates []extent.Extent
}
