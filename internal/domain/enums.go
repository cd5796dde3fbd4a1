package domain

// StatsDimension selects what a statistics report groups by.
type StatsDimension string

const (
	DimensionFeatures   StatsDimension = "features"
	DimensionClients    StatsDimension = "clients"
	DimensionCategories StatsDimension = "categories"
	DimensionSectors    StatsDimension = "sectors"
)

func (d StatsDimension) String() string { return string(d) }

func (d StatsDimension) IsValid() bool {
	switch d {
	case DimensionFeatures, DimensionClients, DimensionCategories, DimensionSectors:
		return true
	}
	return false
}

// StageKind is the type of a statistics pipeline stage.
type StageKind string

const (
	StageMatch         StageKind = "match"
	StageCurrentSector StageKind = "currentSector"
	StageUnwind        StageKind = "unwind"
	StageLookup        StageKind = "lookup"
	StageGroup         StageKind = "group"
)

func (k StageKind) String() string { return string(k) }

// StatsField names a demand field a pipeline stage refers to.
type StatsField string

const (
	FieldOpen                  StatsField = "open"
	FieldCreatedAt             StatsField = "createdAt"
	FieldClientID              StatsField = "clientID"
	FieldCategoryID            StatsField = "categoryID"
	FieldCurrentSector         StatsField = "currentSector"
	FieldSectorHistory         StatsField = "sectorHistory"
	FieldSectorHistorySectorID StatsField = "sectorHistory.sectorID"
)

func (f StatsField) String() string { return string(f) }

// PredicateOp is the comparison a match predicate applies.
type PredicateOp string

const (
	OpEq       PredicateOp = "eq"
	OpIn       PredicateOp = "in"
	OpContains PredicateOp = "contains"
	OpBetween  PredicateOp = "between"
)

func (o PredicateOp) String() string { return string(o) }
