package growth

import "time"

// AgeInWeeks returns whole elapsed weeks between birth and the evaluation
// time, as a pure floor division of elapsed time. Negative when the
// evaluation time precedes birth.
func AgeInWeeks(dateOfBirth, at time.Time) int {
	elapsed := at.Sub(dateOfBirth)
	if elapsed < 0 {
		return -1
	}
	return int(elapsed / (7 * 24 * time.Hour))
}

// AgeInMonths returns whole calendar months between birth and the evaluation
// time. A child born on the 20th turns one month old on the 20th of the next
// month, so the count is decremented while the day-of-month has not been
// reached yet.
func AgeInMonths(dateOfBirth, at time.Time) int {
	years := at.Year() - dateOfBirth.Year()
	months := int(at.Month()) - int(dateOfBirth.Month())
	total := years*12 + months
	if at.Day() < dateOfBirth.Day() {
		total--
	}
	return total
}
