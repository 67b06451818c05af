// Package growth evaluates child measurements against WHO growth standards.
package growth

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by dataset selection and row lookup.
var (
	// ErrNoDataset means no reference table covers the given age/sex combination.
	ErrNoDataset = errors.New("no reference dataset for age and sex")
	// ErrEmptyDataset means a reference table resolved but holds no rows.
	ErrEmptyDataset = errors.New("reference dataset is empty")
	// ErrInvalidNumeric means an LMS transform left the real domain.
	ErrInvalidNumeric = errors.New("invalid numeric result")
)

// Sex selects between the male and female reference tables.
type Sex int

const (
	SexFemale Sex = iota
	SexMale
)

func (s Sex) String() string {
	switch s {
	case SexMale:
		return "male"
	default:
		return "female"
	}
}

// ParseSex parses the stable sex strings used at the API boundary.
func ParseSex(v string) (Sex, error) {
	switch v {
	case "female", "girl", "f":
		return SexFemale, nil
	case "male", "boy", "m":
		return SexMale, nil
	default:
		return SexFemale, fmt.Errorf("unknown sex %q", v)
	}
}

// Kind identifies which growth standard a measurement is evaluated against.
type Kind int

const (
	WeightForAge Kind = iota
	LengthForAge
	WeightForLength
)

func (k Kind) String() string {
	switch k {
	case WeightForAge:
		return "weight-for-age"
	case LengthForAge:
		return "length-for-age"
	default:
		return "weight-for-length"
	}
}

// ParseKind parses the stable kind strings used at the API boundary.
func ParseKind(v string) (Kind, error) {
	switch v {
	case "weight-for-age", "weight":
		return WeightForAge, nil
	case "length-for-age", "height-for-age", "length", "height":
		return LengthForAge, nil
	case "weight-for-length", "weight-for-height":
		return WeightForLength, nil
	default:
		return WeightForAge, fmt.Errorf("unknown evaluation kind %q", v)
	}
}

// Unit returns the measurement unit for the dependent variable.
func (k Kind) Unit() string {
	if k == LengthForAge {
		return "cm"
	}
	return "kg"
}

// Axis is the independent variable a reference table is keyed by.
type Axis int

const (
	AxisWeeks Axis = iota
	AxisMonths
	AxisLengthCm
)

func (a Axis) String() string {
	switch a {
	case AxisWeeks:
		return "weeks"
	case AxisMonths:
		return "months"
	default:
		return "cm"
	}
}

// ReferenceRow is one row of a WHO reference table: the independent variable,
// the Box-Cox LMS parameters, and the seven published SD band boundaries.
// Boundaries are monotonically non-decreasing in the WHO source data.
type ReferenceRow struct {
	X float64

	L float64
	M float64
	S float64

	SD3Neg float64
	SD2Neg float64
	SD1Neg float64
	SD0    float64
	SD1    float64
	SD2    float64
	SD3    float64
}

// Dataset is an immutable reference table for one (kind, sex, axis) combination.
// Rows are sorted ascending by X with no duplicates; built once at startup and
// never mutated afterwards.
type Dataset struct {
	Kind Kind
	Sex  Sex
	Axis Axis
	Rows []ReferenceRow
}

func (d *Dataset) validate() error {
	for i := 1; i < len(d.Rows); i++ {
		if d.Rows[i].X <= d.Rows[i-1].X {
			return fmt.Errorf("dataset %s/%s/%s not strictly ascending at index %d (x=%g)",
				d.Kind, d.Sex, d.Axis, i, d.Rows[i].X)
		}
	}
	return nil
}
