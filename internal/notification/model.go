package notification

// Recipient is one email target in a fan-out request.
type Recipient struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"required"`
}

// BulkEmailRequest is the body of POST /api/send-emails (and its
// /api/send-bulk-emails alias): every participant of one registration
// gets the same confirmation, personalized by name.
type BulkEmailRequest struct {
	Recipients     []Recipient `json:"recipients" binding:"required"`
	RegistrationID string      `json:"registrationId"`
	EventNames     string      `json:"eventNames"`
	PassType       string      `json:"passType"`
	Amount         int         `json:"amount"`
	College        string      `json:"college"`
}

// SingleEmailRequest is the body of POST /api/send-email.
type SingleEmailRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email" binding:"required"`
	RegistrationID string `json:"registrationId"`
	EventNames     string `json:"eventNames"`
	PassType       string `json:"passType"`
	Amount         int    `json:"amount"`
	College        string `json:"college"`
}

// VerificationPendingRequest is the body of
// POST /api/send-verification-pending. The deployment that defers
// payment confirmation to manual review sends this template instead of
// the confirmation one. Field names follow that client's snake_case.
type VerificationPendingRequest struct {
	Recipients      []Recipient `json:"recipients" binding:"required"`
	RegistrationID  string      `json:"registration_id"`
	EventName       string      `json:"event_name"`
	PassType        string      `json:"pass_type"`
	Amount          int         `json:"amount"`
	College         string      `json:"college"`
	TransactionID   string      `json:"transaction_id"`
	TeamMembersList string      `json:"team_members_list"`
}

// EmailResult is the per-recipient outcome of a fan-out.
type EmailResult struct {
	Email   string `json:"email"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// BulkEmailResponse is returned by every email fan-out endpoint.
type BulkEmailResponse struct {
	Success bool          `json:"success"`
	Total   int           `json:"total"`
	Sent    int           `json:"sent"`
	Failed  int           `json:"failed"`
	Results []EmailResult `json:"results"`
}
