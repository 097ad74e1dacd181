package constants

// NATS subjects for job lifecycle and fleet events.
const (
	SubjectJobCreated       = "jobs.created"
	SubjectJobAssigned      = "jobs.assigned"
	SubjectJobStatusChanged = "jobs.status_changed"
	SubjectFleetLocation    = "fleet.location"
)
