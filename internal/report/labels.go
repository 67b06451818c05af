package report

import "github.com/hungknow/community-nutriition-interface/internal/growth"

// Labels resolves a band status to display text. Callers inject their own
// lookup (e.g. a translation table keyed by the stable status strings); the
// growth core itself never touches presentation state.
type Labels func(growth.Status) string

// DefaultLabels returns the built-in English labels.
func DefaultLabels() Labels {
	labels := map[growth.Status]string{
		growth.BelowSD3Neg:            "severely below range (< -3 SD)",
		growth.BetweenSD3NegAndSD2Neg: "well below median (-3 SD to -2 SD)",
		growth.BetweenSD2NegAndSD1Neg: "below median (-2 SD to -1 SD)",
		growth.BetweenSD1NegAndSD0:    "slightly below median (-1 SD to median)",
		growth.BetweenSD0AndSD1:       "slightly above median (median to +1 SD)",
		growth.BetweenSD1AndSD2:       "above median (+1 SD to +2 SD)",
		growth.BetweenSD2AndSD3:       "well above median (+2 SD to +3 SD)",
		growth.AboveSD3:               "severely above range (>= +3 SD)",
	}
	return func(s growth.Status) string {
		if label, ok := labels[s]; ok {
			return label
		}
		return s.String()
	}
}
