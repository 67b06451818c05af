package growth

import (
	"fmt"
	"time"
)

// Status is the percentile band a measurement falls into. Bands are ordered
// from lowest to highest; the string forms are stable and part of the public
// contract (stored in history, used as lookup keys by callers).
type Status int

const (
	BelowSD3Neg Status = iota
	BetweenSD3NegAndSD2Neg
	BetweenSD2NegAndSD1Neg
	BetweenSD1NegAndSD0
	BetweenSD0AndSD1
	BetweenSD1AndSD2
	BetweenSD2AndSD3
	AboveSD3
)

var statusStrings = [...]string{
	BelowSD3Neg:            "below-sd3-neg",
	BetweenSD3NegAndSD2Neg: "between-sd3neg-and-sd2neg",
	BetweenSD2NegAndSD1Neg: "between-sd2neg-and-sd1neg",
	BetweenSD1NegAndSD0:    "between-sd1neg-and-sd0",
	BetweenSD0AndSD1:       "between-sd0-and-sd1",
	BetweenSD1AndSD2:       "between-sd1-and-sd2",
	BetweenSD2AndSD3:       "between-sd2-and-sd3",
	AboveSD3:               "above-sd3",
}

func (s Status) String() string {
	if s < BelowSD3Neg || s > AboveSD3 {
		return fmt.Sprintf("status(%d)", int(s))
	}
	return statusStrings[s]
}

// ParseStatus parses the stable status strings back into a Status.
func ParseStatus(v string) (Status, error) {
	for i, str := range statusStrings {
		if str == v {
			return Status(i), nil
		}
	}
	return BelowSD3Neg, fmt.Errorf("unknown status %q", v)
}

// Classify places a measurement into a band by strict ascending threshold
// comparison. A value exactly equal to a boundary lands in the band above it,
// including x == SD3 which classifies as AboveSD3.
func Classify(row ReferenceRow, value float64) Status {
	switch {
	case value < row.SD3Neg:
		return BelowSD3Neg
	case value < row.SD2Neg:
		return BetweenSD3NegAndSD2Neg
	case value < row.SD1Neg:
		return BetweenSD2NegAndSD1Neg
	case value < row.SD0:
		return BetweenSD1NegAndSD0
	case value < row.SD1:
		return BetweenSD0AndSD1
	case value < row.SD2:
		return BetweenSD1AndSD2
	case value < row.SD3:
		return BetweenSD2AndSD3
	default:
		return AboveSD3
	}
}

// Request describes one evaluation. Value is the observed measurement in the
// kind's unit (kg or cm). Length carries the measured length for
// weight-for-length requests, which are keyed by length rather than age.
// A zero At defaults to the current time.
type Request struct {
	Kind        Kind
	Sex         Sex
	DateOfBirth time.Time
	Value       float64
	Length      float64
	At          time.Time
}

// Resolve selects the dataset and resolves the (possibly interpolated)
// reference row for a request. Chart rendering uses the same resolution path
// so a plotted marker and the classification always agree.
func (r *Registry) Resolve(req Request) (ReferenceRow, *Dataset, error) {
	at := req.At
	if at.IsZero() {
		at = time.Now()
	}
	ds, err := r.SelectDataset(req.Kind, req.Sex, req.DateOfBirth, at)
	if err != nil {
		return ReferenceRow{}, nil, err
	}
	var x float64
	switch {
	case req.Kind == WeightForLength:
		x = req.Length
	case ds.Axis == AxisWeeks:
		x = float64(AgeInWeeks(req.DateOfBirth, at))
	default:
		x = float64(AgeInMonths(req.DateOfBirth, at))
	}
	row, err := FindEntry(ds, x)
	if err != nil {
		return ReferenceRow{}, nil, err
	}
	return row, ds, nil
}

// Evaluate classifies a request's measurement into a percentile band.
func (r *Registry) Evaluate(req Request) (Status, error) {
	row, _, err := r.Resolve(req)
	if err != nil {
		return BelowSD3Neg, err
	}
	return Classify(row, req.Value), nil
}
