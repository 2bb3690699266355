package constants

// JobStatus is the canonical status for rows in review_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPending   JobStatus = "PENDING"   // created, not started
	JobStatusRunning   JobStatus = "RUNNING"   // pipeline in progress
	JobStatusSucceeded JobStatus = "SUCCEEDED" // terminal success, cells available
	JobStatusFailed    JobStatus = "FAILED"    // terminal failure
)

// JobMode selects the deterministic input slice for a run.
type JobMode string

const (
	ModeQuick JobMode = "quick" // first document, first 3 pages, first 5 fields
	ModeFull  JobMode = "full"  // everything
)

// ParseJobMode maps a wire string onto a JobMode, defaulting to full.
func ParseJobMode(s string) (JobMode, bool) {
	switch JobMode(s) {
	case ModeQuick:
		return ModeQuick, true
	case ModeFull, "":
		return ModeFull, true
	}
	return ModeFull, false
}

// ReviewState is the reviewer-facing lifecycle status of a cell.
type ReviewState string

const (
	StateExtracted     ReviewState = "EXTRACTED"      // initial, primary match found
	StateMissingData   ReviewState = "MISSING_DATA"   // initial, no candidate
	StateConfirmed     ReviewState = "CONFIRMED"      // reviewer accepted
	StateRejected      ReviewState = "REJECTED"       // reviewer rejected
	StateManualUpdated ReviewState = "MANUAL_UPDATED" // reviewer supplied a value
)

// ReviewStates holds every valid review state, for schema validation.
var ReviewStates = []string{
	string(StateExtracted),
	string(StateMissingData),
	string(StateConfirmed),
	string(StateRejected),
	string(StateManualUpdated),
}

// JobStatuses holds every valid job status, for schema validation.
var JobStatuses = []string{
	string(JobStatusPending),
	string(JobStatusRunning),
	string(JobStatusSucceeded),
	string(JobStatusFailed),
}
