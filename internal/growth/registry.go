package growth

import (
	"fmt"
	"time"
)

// Age bracket upper bounds. A bracket matches when age <= bound; every
// comparison is inclusive and an age beyond the last bracket is a miss,
// never a fallback to the nearest table.
const (
	MaxWeeks        = 13
	MaxWeightMonths = 24
	MaxHeightMonths = 60
)

type datasetKey struct {
	kind Kind
	sex  Sex
	axis Axis
}

// Registry indexes the reference datasets by kind, sex and axis. It is built
// once from the compiled-in tables and read-only afterwards.
type Registry struct {
	byKey map[datasetKey]*Dataset
}

// NewRegistry validates and indexes the given datasets.
func NewRegistry(datasets []*Dataset) (*Registry, error) {
	byKey := make(map[datasetKey]*Dataset, len(datasets))
	for _, ds := range datasets {
		if err := ds.validate(); err != nil {
			return nil, err
		}
		key := datasetKey{kind: ds.Kind, sex: ds.Sex, axis: ds.Axis}
		if _, ok := byKey[key]; ok {
			return nil, fmt.Errorf("duplicate dataset %s/%s/%s", ds.Kind, ds.Sex, ds.Axis)
		}
		byKey[key] = ds
	}
	return &Registry{byKey: byKey}, nil
}

// Dataset returns the table for an exact (kind, sex, axis) key.
func (r *Registry) Dataset(kind Kind, sex Sex, axis Axis) (*Dataset, error) {
	ds, ok := r.byKey[datasetKey{kind: kind, sex: sex, axis: axis}]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s/%s", ErrNoDataset, kind, sex, axis)
	}
	return ds, nil
}

// SelectDataset picks the reference table for a child's age and sex.
// Brackets are checked in ascending order and the first bracket whose upper
// bound is not exceeded wins; an age beyond every bracket (or before birth)
// yields ErrNoDataset.
func (r *Registry) SelectDataset(kind Kind, sex Sex, dateOfBirth, at time.Time) (*Dataset, error) {
	switch kind {
	case WeightForAge:
		weeks := AgeInWeeks(dateOfBirth, at)
		if weeks < 0 {
			return nil, fmt.Errorf("%w: evaluation before birth", ErrNoDataset)
		}
		if weeks <= MaxWeeks {
			return r.Dataset(kind, sex, AxisWeeks)
		}
		if months := AgeInMonths(dateOfBirth, at); months <= MaxWeightMonths {
			return r.Dataset(kind, sex, AxisMonths)
		}
		return nil, fmt.Errorf("%w: older than %d months", ErrNoDataset, MaxWeightMonths)
	case LengthForAge:
		months := AgeInMonths(dateOfBirth, at)
		if months < 0 {
			return nil, fmt.Errorf("%w: evaluation before birth", ErrNoDataset)
		}
		if months <= MaxHeightMonths {
			return r.Dataset(kind, sex, AxisMonths)
		}
		return nil, fmt.Errorf("%w: older than %d months", ErrNoDataset, MaxHeightMonths)
	case WeightForLength:
		// Keyed by measured length, not age; only sex selects the table.
		return r.Dataset(kind, sex, AxisLengthCm)
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrNoDataset, kind)
	}
}
