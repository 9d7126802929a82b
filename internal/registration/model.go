package registration

// Participant is one member of a registration, primary or additional.
type Participant struct {
	Name            string `json:"name"`
	College         string `json:"college"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Year            string `json:"year"`
	LunchPreference string `json:"lunchPreference"`
}

// Complete reports whether every required field is present.
// Lunch preference is optional and defaults downstream.
func (p Participant) Complete() bool {
	return p.Name != "" && p.College != "" && p.Email != "" && p.Phone != "" && p.Year != ""
}

// SubmitRequest is the finalized payload the website posts after the
// payment confirmation action.
type SubmitRequest struct {
	Timestamp      string        `json:"timestamp"`
	RegistrationID string        `json:"registrationId"`
	EventNames     string        `json:"eventNames"`
	Participants   []Participant `json:"participants" binding:"required"`
	PassType       string        `json:"passType"`
	Amount         int           `json:"amount"`
	TransactionID  string        `json:"transactionId,omitempty"`
}

// Row is the flat sheet row appended per participant. The amount and
// transaction id are carried on the primary row only so the sheet can be
// summed without double counting.
type Row struct {
	Timestamp       string `json:"timestamp"`
	RegistrationID  string `json:"registrationId"`
	EventNames      string `json:"eventNames"`
	MemberName      string `json:"memberName"`
	MemberEmail     string `json:"memberEmail"`
	MemberPhone     string `json:"memberPhone"`
	College         string `json:"college"`
	Year            string `json:"year"`
	LunchPreference string `json:"lunchPreference"`
	PassType        string `json:"passType"`
	Amount          int    `json:"amount,omitempty"`
	IsPrimary       bool   `json:"isPrimary"`
	TransactionID   string `json:"transactionId,omitempty"`
}

// RowResult is the per-participant outcome of the sheet fan-out.
type RowResult struct {
	Member  string `json:"member"`
	Email   string `json:"email"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// SubmitResponse is the envelope returned by POST /api/submit-to-sheets.
type SubmitResponse struct {
	Success        bool        `json:"success"`
	RegistrationID string      `json:"registrationId"`
	Total          int         `json:"total"`
	Appended       int         `json:"appended"`
	Failed         int         `json:"failed"`
	Results        []RowResult `json:"results"`
}
