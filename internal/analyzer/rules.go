package analyzer

// Thresholds holds the rule-table boundaries, score contributions, and
// classification cutoffs. Config may override these; the defaults are the
// canonical values.
type Thresholds struct {
	AgeExpiredMonths int `mapstructure:"age_expired_months"`
	AgeExpiredDelta  int `mapstructure:"age_expired_delta"`
	AgeLateMonths    int `mapstructure:"age_late_months"`
	AgeLateDelta     int `mapstructure:"age_late_delta"`
	AgeMidMonths     int `mapstructure:"age_mid_months"`
	AgeMidDelta      int `mapstructure:"age_mid_delta"`

	InspectionOverdueDays  int `mapstructure:"inspection_overdue_days"`
	InspectionOverdueDelta int `mapstructure:"inspection_overdue_delta"`
	InspectionDueDays      int `mapstructure:"inspection_due_days"`
	InspectionDueDelta     int `mapstructure:"inspection_due_delta"`

	StatusDelta int `mapstructure:"status_delta"`

	WarningScore  int `mapstructure:"warning_score"`
	CriticalScore int `mapstructure:"critical_score"`
}

// DefaultThresholds are the canonical scoring values.
var DefaultThresholds = Thresholds{
	AgeExpiredMonths: 48,
	AgeExpiredDelta:  40,
	AgeLateMonths:    36,
	AgeLateDelta:     25,
	AgeMidMonths:     24,
	AgeMidDelta:      10,

	InspectionOverdueDays:  180,
	InspectionOverdueDelta: 35,
	InspectionDueDays:      90,
	InspectionDueDelta:     20,

	StatusDelta: 50,

	WarningScore:  40,
	CriticalScore: 70,
}

// ruleInput carries the computed quantities the rule table evaluates.
type ruleInput struct {
	ageMonths     int
	inspection    Recency
	statusFlagged bool
}

// rule is one entry of the scoring table: a predicate over the computed
// inputs, the score contribution when it fires, and the factor text
// reported to the user.
type rule struct {
	applies func(in ruleInput) bool
	delta   int
	factor  string
}

// ruleTable returns the ordered rule buckets for the given thresholds.
// Buckets are evaluated in fixed order (age, inspection, status) so the
// reported factor ordering is deterministic. Within a bucket the first
// matching rule wins, which keeps the tiers mutually exclusive.
func ruleTable(t Thresholds) [][]rule {
	return [][]rule{
		{
			{
				applies: func(in ruleInput) bool { return in.ageMonths > t.AgeExpiredMonths },
				delta:   t.AgeExpiredDelta,
				factor:  "Component exceeding recommended service life",
			},
			{
				applies: func(in ruleInput) bool { return in.ageMonths > t.AgeLateMonths },
				delta:   t.AgeLateDelta,
				factor:  "Component approaching end of service life",
			},
			{
				applies: func(in ruleInput) bool { return in.ageMonths > t.AgeMidMonths },
				delta:   t.AgeMidDelta,
				factor:  "Component in mid-service period",
			},
		},
		{
			{
				applies: func(in ruleInput) bool { return in.inspection.Exceeds(t.InspectionOverdueDays) },
				delta:   t.InspectionOverdueDelta,
				factor:  "Overdue for inspection (>6 months)",
			},
			{
				applies: func(in ruleInput) bool { return in.inspection.Exceeds(t.InspectionDueDays) },
				delta:   t.InspectionDueDelta,
				factor:  "Due for inspection soon",
			},
		},
		{
			{
				applies: func(in ruleInput) bool { return in.statusFlagged },
				delta:   t.StatusDelta,
				factor:  "Component status indicates issues",
			},
		},
	}
}
