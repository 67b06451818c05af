// Package who carries the compiled-in WHO child growth standard tables.
package who

import "github.com/hungknow/community-nutriition-interface/internal/growth"

// Registry builds and validates the growth registry from the compiled-in
// tables. The returned registry is read-only; callers share one instance for
// the process lifetime.
func Registry() (*growth.Registry, error) {
	return growth.NewRegistry([]*growth.Dataset{
		{Kind: growth.WeightForAge, Sex: growth.SexFemale, Axis: growth.AxisWeeks, Rows: weightForAgeWeeksGirls},
		{Kind: growth.WeightForAge, Sex: growth.SexMale, Axis: growth.AxisWeeks, Rows: weightForAgeWeeksBoys},
		{Kind: growth.WeightForAge, Sex: growth.SexFemale, Axis: growth.AxisMonths, Rows: weightForAgeMonthsGirls},
		{Kind: growth.WeightForAge, Sex: growth.SexMale, Axis: growth.AxisMonths, Rows: weightForAgeMonthsBoys},
		{Kind: growth.LengthForAge, Sex: growth.SexFemale, Axis: growth.AxisMonths, Rows: lengthForAgeMonthsGirls},
		{Kind: growth.LengthForAge, Sex: growth.SexMale, Axis: growth.AxisMonths, Rows: lengthForAgeMonthsBoys},
		{Kind: growth.WeightForLength, Sex: growth.SexFemale, Axis: growth.AxisLengthCm, Rows: weightForLengthGirls},
		{Kind: growth.WeightForLength, Sex: growth.SexMale, Axis: growth.AxisLengthCm, Rows: weightForLengthBoys},
	})
}
