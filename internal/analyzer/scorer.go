package analyzer

import (
	"strings"
	"time"

	"github.com/blackwell-systems/trackwatch/internal/inventory"
)

// maxRiskScore caps the reported score. Raw rule contributions may sum
// higher; only the reported value is clamped.
const maxRiskScore = 100

// flaggedStatuses are the lifecycle states that indicate a known defect.
// Matching is case-insensitive.
var flaggedStatuses = map[string]bool{
	"faulty":  true,
	"damaged": true,
	"worn":    true,
}

// Score analyzes a product record with the default thresholds.
func Score(rec *inventory.ProductRecord, now time.Time) (*ConditionAnalysis, error) {
	return ScoreWith(DefaultThresholds, rec, now)
}

// ScoreWith analyzes a product record against the given thresholds. The
// record is validated first, so a missing required field surfaces as a
// *inventory.ValidationError rather than a silently skipped rule bucket.
func ScoreWith(t Thresholds, rec *inventory.ProductRecord, now time.Time) (*ConditionAnalysis, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	ageMonths, err := AgeMonths(rec.DateOfSupply, now)
	if err != nil {
		return nil, err
	}

	inspection, err := LastInspection(rec.InspectionDates, now)
	if err != nil {
		return nil, err
	}

	in := ruleInput{
		ageMonths:     ageMonths,
		inspection:    inspection,
		statusFlagged: flaggedStatuses[strings.ToLower(rec.Status)],
	}

	score := 0
	var factors []string
	for _, bucket := range ruleTable(t) {
		for _, r := range bucket {
			if r.applies(in) {
				score += r.delta
				factors = append(factors, r.factor)
				break
			}
		}
	}

	if score > maxRiskScore {
		score = maxRiskScore
	}

	return &ConditionAnalysis{
		AgeMonths:   ageMonths,
		Inspection:  inspection,
		RiskScore:   score,
		RiskFactors: factors,
		Condition:   t.Classify(score),
	}, nil
}

// Classify maps a risk score to its condition. Cutoffs are inclusive on
// the lower bound, so the three conditions partition the score range.
func (t Thresholds) Classify(score int) Condition {
	switch {
	case score >= t.CriticalScore:
		return ConditionCritical
	case score >= t.WarningScore:
		return ConditionWarning
	default:
		return ConditionGood
	}
}
