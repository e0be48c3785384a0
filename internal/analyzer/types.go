// Package analyzer implements condition scoring for railway track fittings.
// It turns a fetched product record into a risk score, a condition
// classification, and the list of contributing risk factors. Scoring is
// deterministic and does no I/O; the current time is always injected.
package analyzer

import "encoding/json"

// Condition is the overall health classification derived from the risk score.
type Condition string

const (
	ConditionGood     Condition = "GOOD"
	ConditionWarning  Condition = "WARNING"
	ConditionCritical Condition = "CRITICAL"
)

// Recency reports how long ago the most recent inspection happened.
// Never marks a component with no recorded inspection at all; it compares
// as more overdue than any finite day count.
type Recency struct {
	Days  int
	Never bool
}

// Exceeds reports whether the recency is past the given day threshold.
// A never-inspected component exceeds every threshold.
func (r Recency) Exceeds(days int) bool {
	return r.Never || r.Days > days
}

// MarshalJSON renders a finite recency as {"days": N} and the
// never-inspected sentinel as {"never_inspected": true}.
func (r Recency) MarshalJSON() ([]byte, error) {
	if r.Never {
		return json.Marshal(struct {
			Never bool `json:"never_inspected"`
		}{true})
	}
	return json.Marshal(struct {
		Days int `json:"days"`
	}{r.Days})
}

// ConditionAnalysis is the result of scoring a single product record.
// It is computed fresh per request and never mutated after construction.
type ConditionAnalysis struct {
	// AgeMonths is whole months since the supply date, computed as
	// floor(elapsed_days / 30). An approximation by design, not
	// calendar-accurate.
	AgeMonths int `json:"age_months"`

	// Inspection is the time since the most recent inspection.
	Inspection Recency `json:"last_inspection"`

	// RiskScore is the accumulated rule score, clamped to [0, 100].
	RiskScore int `json:"risk_score"`

	// RiskFactors lists the triggered rules in evaluation order
	// (age, then inspection recency, then status).
	RiskFactors []string `json:"risk_factors"`

	// Condition is the classification derived from RiskScore.
	Condition Condition `json:"condition"`
}
