package domain

// Status is the reduced ticket vocabulary shown to end users. HubSpot tracks
// tickets through per-pipeline stage ids; the portal collapses all of them
// into these four values.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusWaiting    Status = "waiting"
	StatusClosed     Status = "closed"
)

// StageMap maps HubSpot pipeline-stage ids to canonical statuses. Hand-curated
// and append-only; never mutated at runtime.
type StageMap map[string]Status

// CategoryMap maps HubSpot ticket category codes to human-readable labels.
type CategoryMap map[string]string
