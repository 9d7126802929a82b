package auditlog

import "time"

// Actions recorded on the registration audit topic.
const (
	ActionRegistrationSubmitted = "REGISTRATION_SUBMITTED"
	ActionEmailsSent            = "EMAILS_SENT"
	ActionFallbackSynced        = "FALLBACK_SYNCED"
)

// Event is one audit record. Events are advisory: downstream consumers
// (dashboards, reconciliation scripts) read the topic, the relay never
// does.
type Event struct {
	ID             string                 `json:"id"`
	Action         string                 `json:"action"`
	RegistrationID string                 `json:"registration_id,omitempty"`
	IPAddress      string                 `json:"ip_address,omitempty"`
	Details        map[string]interface{} `json:"details,omitempty"`
	Timestamp      time.Time              `json:"timestamp"`
}
