package analyzer

import "time"

// dateLayout is the wire format for all dates in a product record.
const dateLayout = "2006-01-02"

// daysPerMonth is the fixed divisor for the age approximation.
const daysPerMonth = 30

// AgeMonths returns the component age in whole months since the supply
// date: floor(elapsed_days / 30). A malformed date yields a *ParseError.
func AgeMonths(dateOfSupply string, now time.Time) (int, error) {
	supply, err := time.Parse(dateLayout, dateOfSupply)
	if err != nil {
		return 0, &ParseError{Field: "dateOfSupply", Value: dateOfSupply, Err: err}
	}
	return floorDiv(daysBetween(supply, now), daysPerMonth), nil
}

// LastInspection returns the days since the most recent date in the set,
// or the never-inspected sentinel for an empty set. Order of the input is
// irrelevant. A malformed date yields a *ParseError.
func LastInspection(dates []string, now time.Time) (Recency, error) {
	if len(dates) == 0 {
		return Recency{Never: true}, nil
	}

	var latest time.Time
	for _, d := range dates {
		t, err := time.Parse(dateLayout, d)
		if err != nil {
			return Recency{}, &ParseError{Field: "inspectionDates", Value: d, Err: err}
		}
		if t.After(latest) {
			latest = t
		}
	}
	return Recency{Days: daysBetween(latest, now)}, nil
}

// daysBetween returns whole days elapsed from one instant to another.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}

// floorDiv divides rounding toward negative infinity, so a supply date in
// the future yields a negative month count rather than rounding up to zero.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
