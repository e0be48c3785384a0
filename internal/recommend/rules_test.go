package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/trackwatch/internal/analyzer"
)

func TestFor_CriticalAdditivity(t *testing.T) {
	// CRITICAL with old age and an overdue inspection picks up all five:
	// three urgent actions plus both cross-cutting recommendations.
	a := &analyzer.ConditionAnalysis{
		AgeMonths:  40,
		Inspection: analyzer.Recency{Days: 100},
		RiskScore:  75,
		Condition:  analyzer.ConditionCritical,
	}

	recs := For(a)
	require.Len(t, recs, 5)
	assert.Equal(t, []string{
		"IMMEDIATE ACTION: Replace component immediately",
		"Schedule emergency maintenance",
		"Conduct thorough safety inspection",
		"Schedule inspection (last: 100 days ago)",
		"Consider proactive replacement planning",
	}, recs)
}

func TestFor_WarningBaseline(t *testing.T) {
	a := &analyzer.ConditionAnalysis{
		AgeMonths:  10,
		Inspection: analyzer.Recency{Days: 20},
		RiskScore:  50,
		Condition:  analyzer.ConditionWarning,
	}

	recs := For(a)
	require.Len(t, recs, 3)
	assert.Equal(t, "Schedule replacement within 30 days", recs[0])
	assert.Equal(t, "Increase inspection frequency to weekly", recs[1])
	assert.Equal(t, "Monitor closely for deterioration", recs[2])
}

func TestFor_GoodBaseline(t *testing.T) {
	a := &analyzer.ConditionAnalysis{
		AgeMonths:  2,
		Inspection: analyzer.Recency{Days: 5},
		Condition:  analyzer.ConditionGood,
	}

	recs := For(a)
	assert.Equal(t, []string{
		"Continue normal operation",
		"Maintain regular inspection schedule",
	}, recs)
}

func TestInspectionOverdue_NeverInspected(t *testing.T) {
	a := &analyzer.ConditionAnalysis{
		Inspection: analyzer.Recency{Never: true},
		Condition:  analyzer.ConditionGood,
	}

	recs := For(a)
	require.Len(t, recs, 3)
	assert.Equal(t, "Schedule inspection (no inspection on record)", recs[2])
}

func TestInspectionOverdue_Boundary(t *testing.T) {
	at90 := InspectionOverdue(&analyzer.ConditionAnalysis{Inspection: analyzer.Recency{Days: 90}})
	assert.Empty(t, at90)

	at91 := InspectionOverdue(&analyzer.ConditionAnalysis{Inspection: analyzer.Recency{Days: 91}})
	require.Len(t, at91, 1)
	assert.Equal(t, "Schedule inspection (last: 91 days ago)", at91[0])
}

func TestAgingReplacement_Boundary(t *testing.T) {
	assert.Empty(t, AgingReplacement(&analyzer.ConditionAnalysis{AgeMonths: 36}))
	assert.Len(t, AgingReplacement(&analyzer.ConditionAnalysis{AgeMonths: 37}), 1)
}

func TestConditionRules_MutuallyExclusive(t *testing.T) {
	// Exactly one condition rule fires for any classification.
	for _, cond := range []analyzer.Condition{
		analyzer.ConditionGood,
		analyzer.ConditionWarning,
		analyzer.ConditionCritical,
	} {
		a := &analyzer.ConditionAnalysis{
			Inspection: analyzer.Recency{Days: 5},
			Condition:  cond,
		}
		fired := 0
		for _, rule := range []Rule{CriticalActions, WarningActions, NormalOperation} {
			if len(rule(a)) > 0 {
				fired++
			}
		}
		assert.Equal(t, 1, fired, "condition %s", cond)
	}
}
