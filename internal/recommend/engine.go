// Package recommend derives maintenance recommendations from a condition
// analysis. Rules are pure functions applied in a fixed order, so the
// recommendation list is deterministic for a given analysis.
package recommend

import "github.com/blackwell-systems/trackwatch/internal/analyzer"

// Rule examines an analysis and produces zero or more recommendations.
type Rule func(a *analyzer.ConditionAnalysis) []string

// Engine runs all registered rules against an analysis and collects the
// resulting recommendations.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine with all built-in rules registered. The
// condition rules are mutually exclusive among themselves; the inspection
// and aging rules apply additively regardless of condition.
func NewEngine() *Engine {
	return &Engine{
		rules: []Rule{
			CriticalActions,
			WarningActions,
			NormalOperation,
			InspectionOverdue,
			AgingReplacement,
		},
	}
}

// Run executes all registered rules in order and returns the combined
// recommendation list.
func (e *Engine) Run(a *analyzer.ConditionAnalysis) []string {
	var all []string
	for _, rule := range e.rules {
		all = append(all, rule(a)...)
	}
	return all
}

// For runs the built-in rules against the analysis.
func For(a *analyzer.ConditionAnalysis) []string {
	return NewEngine().Run(a)
}
