package recommend

import (
	"fmt"

	"github.com/blackwell-systems/trackwatch/internal/analyzer"
)

// inspectionRecommendDays is the recency past which an inspection is
// recommended regardless of overall condition.
const inspectionRecommendDays = 90

// agingRecommendMonths is the age past which proactive replacement
// planning is recommended regardless of overall condition.
const agingRecommendMonths = 36

// CriticalActions returns the urgent actions for a CRITICAL component.
func CriticalActions(a *analyzer.ConditionAnalysis) []string {
	if a.Condition != analyzer.ConditionCritical {
		return nil
	}
	return []string{
		"IMMEDIATE ACTION: Replace component immediately",
		"Schedule emergency maintenance",
		"Conduct thorough safety inspection",
	}
}

// WarningActions returns the near-term actions for a WARNING component.
func WarningActions(a *analyzer.ConditionAnalysis) []string {
	if a.Condition != analyzer.ConditionWarning {
		return nil
	}
	return []string{
		"Schedule replacement within 30 days",
		"Increase inspection frequency to weekly",
		"Monitor closely for deterioration",
	}
}

// NormalOperation returns the baseline actions for a GOOD component.
func NormalOperation(a *analyzer.ConditionAnalysis) []string {
	if a.Condition != analyzer.ConditionGood {
		return nil
	}
	return []string{
		"Continue normal operation",
		"Maintain regular inspection schedule",
	}
}

// InspectionOverdue recommends scheduling an inspection when the last one
// is more than 90 days back, interpolating the exact day count. It fires
// for never-inspected components as well.
func InspectionOverdue(a *analyzer.ConditionAnalysis) []string {
	if !a.Inspection.Exceeds(inspectionRecommendDays) {
		return nil
	}
	if a.Inspection.Never {
		return []string{"Schedule inspection (no inspection on record)"}
	}
	return []string{fmt.Sprintf("Schedule inspection (last: %d days ago)", a.Inspection.Days)}
}

// AgingReplacement recommends replacement planning for components older
// than 36 months.
func AgingReplacement(a *analyzer.ConditionAnalysis) []string {
	if a.AgeMonths <= agingRecommendMonths {
		return nil
	}
	return []string{"Consider proactive replacement planning"}
}
