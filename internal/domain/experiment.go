package domain

const (
	ExperimentStatusDraft     = "draft"
	ExperimentStatusActive    = "active"
	ExperimentStatusPaused    = "paused"
	ExperimentStatusCompleted = "completed"
)

// VisitorAttributes feed the optional audience rule on an experiment,
// e.g. {"country": "US", "plan": "pro"}.
type VisitorAttributes map[string]interface{}
