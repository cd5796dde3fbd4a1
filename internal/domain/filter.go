package domain

import (
	"time"

	"github.com/google/uuid"
)

// StatsParams are the decoded query parameters of a statistics report.
// Nil pointers mean the filter was not provided.
type StatsParams struct {
	IsActive    *bool
	InitialDate time.Time
	FinalDate   time.Time
	SectorID    *string
	CategoryID  *uuid.UUID
	ClientID    *string
	FeatureID   *string
}

// TimeRange is an inclusive [From, To] interval.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// Predicate is one condition of a match stage.
// Value holds a bool or string for OpEq, a []string for OpIn, a uuid.UUID
// for OpContains and a TimeRange for OpBetween.
type Predicate struct {
	Field StatsField
	Op    PredicateOp
	Value any
}

// Stage is one step of a statistics pipeline.
type Stage struct {
	Kind       StageKind
	Predicates []Predicate // match
	Field      StatsField  // unwind, group
	From       string      // lookup
}

// Pipeline is an ordered list of stages evaluated over the demand collection.
type Pipeline struct {
	Dimension StatsDimension
	Stages    []Stage
}

// StatsRow is one group of a statistics report.
type StatsRow struct {
	ID       string
	Count    int64
	Category *Category
}
