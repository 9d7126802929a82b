// Package workflow drives the multi-step registration form: per-step
// validation gates, pass selection, and the post-submission screen
// sequence through payment to a terminal state. It owns the draft that
// step views read and write; network effects go through a Relay.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kavinak445/technovate-backend/internal/events"
	"github.com/kavinak445/technovate-backend/internal/notification"
	"github.com/kavinak445/technovate-backend/internal/payment"
	"github.com/kavinak445/technovate-backend/internal/registration"
)

// Screen is the coarse position in the workflow. Form covers steps 1-3.
type Screen int

const (
	ScreenForm Screen = iota
	ScreenPaymentPending
	ScreenSuccess
	ScreenVerificationPending
)

func (s Screen) String() string {
	switch s {
	case ScreenForm:
		return "form"
	case ScreenPaymentPending:
		return "payment-pending"
	case ScreenSuccess:
		return "success"
	case ScreenVerificationPending:
		return "verification-pending"
	}
	return "unknown"
}

// Participant mirrors one member's form fields.
type Participant struct {
	Name            string
	College         string
	Email           string
	Phone           string
	Year            string
	LunchPreference string
}

// Draft is the mutable form state held across steps.
type Draft struct {
	Primary           Participant
	SelectedEvents    []string
	PassType          string
	AdditionalMembers []Participant
}

// Relay is the backend the workflow submits through. The HTTP client in
// this package is the production implementation.
type Relay interface {
	SubmitToSheets(ctx context.Context, req registration.SubmitRequest) (*registration.SubmitResponse, error)
	SendConfirmations(ctx context.Context, req notification.BulkEmailRequest) (*notification.BulkEmailResponse, error)
	SendVerificationPending(ctx context.Context, req notification.VerificationPendingRequest) (*notification.BulkEmailResponse, error)
}

// Validation errors shown as inline notifications. Texts match the
// website toasts.
var (
	ErrAllFieldsRequired   = errors.New("please fill in all fields")
	ErrInvalidEmail        = errors.New("please enter a valid email")
	ErrInvalidPhone        = errors.New("please enter a valid 10-digit phone number")
	ErrNoEventsSelected    = errors.New("please select at least one event")
	ErrNoPassSelected      = errors.New("please select a pass type")
	ErrNoValidParticipants = errors.New("no valid participants found")
)

// Config tunes one workflow instance.
type Config struct {
	Relay Relay
	// DeferVerification selects the deployment that treats the proof as
	// subject to manual review: terminal screen VerificationPending and
	// the PENDING VERIFICATION template instead of the confirmation.
	DeferVerification bool
	// Now overrides the clock for registration id generation.
	Now func() time.Time
}

// Workflow is a single registrant's session. It is not safe for
// concurrent use; the UI event loop is single threaded.
type Workflow struct {
	cfg Config

	screen         Screen
	step           int
	draft          Draft
	registrationID string
	transactionID  string
	notice         string
}

func New(cfg Config) *Workflow {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Workflow{cfg: cfg, screen: ScreenForm, step: 1}
}

func (w *Workflow) Screen() Screen         { return w.screen }
func (w *Workflow) Step() int              { return w.step }
func (w *Workflow) Draft() Draft           { return w.draft }
func (w *Workflow) RegistrationID() string { return w.registrationID }
func (w *Workflow) TransactionID() string  { return w.transactionID }

// Notice is the softened partial-failure message, if any, set during
// payment confirmation.
func (w *Workflow) Notice() string { return w.notice }

// SelectedPass resolves the chosen pass type, or nil before step 2.
func (w *Workflow) SelectedPass() *events.PassType {
	return events.FindPass(w.draft.PassType)
}

// SetPrimary replaces the primary participant's fields.
func (w *Workflow) SetPrimary(p Participant) {
	w.draft.Primary = p
}

// ToggleEvent adds or removes an event from the selection.
func (w *Workflow) ToggleEvent(id string) {
	for i, ev := range w.draft.SelectedEvents {
		if ev == id {
			w.draft.SelectedEvents = append(w.draft.SelectedEvents[:i], w.draft.SelectedEvents[i+1:]...)
			return
		}
	}
	w.draft.SelectedEvents = append(w.draft.SelectedEvents, id)
}

// SelectPass picks a pass type and resizes the additional-member list
// to members-1 fresh records. Re-selecting the same pass is idempotent;
// switching passes resets the member records.
func (w *Workflow) SelectPass(passID string) error {
	pass := events.FindPass(passID)
	if pass == nil {
		return fmt.Errorf("unknown pass type: %s", passID)
	}
	w.draft.PassType = passID
	members := make([]Participant, pass.Members-1)
	for i := range members {
		members[i] = Participant{LunchPreference: "non-veg"}
	}
	w.draft.AdditionalMembers = members
	return nil
}

// SetMember writes one additional member's record.
func (w *Workflow) SetMember(index int, p Participant) error {
	if index < 0 || index >= len(w.draft.AdditionalMembers) {
		return fmt.Errorf("no additional member at position %d", index+1)
	}
	w.draft.AdditionalMembers[index] = p
	return nil
}

// ValidateStep applies the current step's gate without advancing.
func (w *Workflow) ValidateStep() error {
	switch w.step {
	case 1:
		p := w.draft.Primary
		if p.Name == "" || p.College == "" || p.Email == "" || p.Phone == "" || p.Year == "" {
			return ErrAllFieldsRequired
		}
		if !emailPattern.MatchString(p.Email) {
			return ErrInvalidEmail
		}
		if !phonePattern.MatchString(p.Phone) {
			return ErrInvalidPhone
		}
	case 2:
		if len(w.draft.SelectedEvents) == 0 {
			return ErrNoEventsSelected
		}
		if w.draft.PassType == "" {
			return ErrNoPassSelected
		}
	case 3:
		for i, m := range w.draft.AdditionalMembers {
			if m.Name == "" || m.College == "" || m.Email == "" || m.Phone == "" || m.Year == "" {
				// Ordinals are team-wide: the primary is member 1.
				return fmt.Errorf("please fill in all details for member %d", i+2)
			}
		}
	}
	return nil
}

// Next validates the current step and advances. Earlier input is never
// discarded.
func (w *Workflow) Next() error {
	if w.screen != ScreenForm || w.step >= 3 {
		return errors.New("no next step from here")
	}
	if err := w.ValidateStep(); err != nil {
		return err
	}
	w.step++
	return nil
}

// Back moves one step back without validation.
func (w *Workflow) Back() {
	if w.screen == ScreenForm && w.step > 1 {
		w.step--
	}
}

// Submit finalizes the form: validates step 3, generates the
// registration id and moves to the payment screen.
func (w *Workflow) Submit() error {
	if w.screen != ScreenForm || w.step != 3 {
		return errors.New("registration form not complete")
	}
	if err := w.ValidateStep(); err != nil {
		return err
	}
	w.registrationID = GenerateRegistrationID(w.cfg.Now())
	w.screen = ScreenPaymentPending
	return nil
}

// SetTransactionID records the proof of payment after validating it.
func (w *Workflow) SetTransactionID(id string) error {
	if err := payment.ValidateTransactionID(id); err != nil {
		return err
	}
	w.transactionID = id
	return nil
}

// ConfirmPayment assembles the participant list, persists it through
// the relay and fans out notification emails. Persistence failure keeps
// the workflow on the payment screen for retry; email failure merely
// softens the outcome message. The terminal screen depends on the
// verification deployment mode.
func (w *Workflow) ConfirmPayment(ctx context.Context) error {
	if w.screen != ScreenPaymentPending {
		return errors.New("no payment pending")
	}
	if err := payment.ValidateTransactionID(w.transactionID); err != nil {
		return err
	}

	participants := w.assembleParticipants()
	if len(participants) == 0 {
		return ErrNoValidParticipants
	}

	pass := w.SelectedPass()
	if pass == nil {
		return ErrNoPassSelected
	}
	eventNames := events.ResolveNames(w.draft.SelectedEvents)

	submitResp, err := w.cfg.Relay.SubmitToSheets(ctx, registration.SubmitRequest{
		Timestamp:      w.cfg.Now().UTC().Format(time.RFC3339),
		RegistrationID: w.registrationID,
		EventNames:     eventNames,
		Participants:   participants,
		PassType:       pass.Name,
		Amount:         pass.Price,
		TransactionID:  w.transactionID,
	})
	if err != nil {
		return fmt.Errorf("registration could not be saved: %w", err)
	}
	if !submitResp.Success {
		return errors.New("registration could not be saved, please try again")
	}

	w.notice = ""
	if submitResp.Failed > 0 {
		w.notice = "registration saved, some entries may take a moment to appear"
	}

	if err := w.sendEmails(ctx, participants, eventNames, pass); err != nil {
		w.notice = "registration saved, email notification may be delayed"
	}

	if w.cfg.DeferVerification {
		w.screen = ScreenVerificationPending
	} else {
		w.screen = ScreenSuccess
	}
	return nil
}

func (w *Workflow) sendEmails(ctx context.Context, participants []registration.Participant, eventNames string, pass *events.PassType) error {
	recipients := make([]notification.Recipient, 0, len(participants))
	names := make([]string, 0, len(participants))
	for _, p := range participants {
		recipients = append(recipients, notification.Recipient{Name: p.Name, Email: p.Email})
		names = append(names, p.Name)
	}

	if w.cfg.DeferVerification {
		resp, err := w.cfg.Relay.SendVerificationPending(ctx, notification.VerificationPendingRequest{
			Recipients:      recipients,
			RegistrationID:  w.registrationID,
			EventName:       eventNames,
			PassType:        pass.Name,
			Amount:          pass.Price,
			College:         w.draft.Primary.College,
			TransactionID:   w.transactionID,
			TeamMembersList: strings.Join(names, ", "),
		})
		if err != nil {
			return err
		}
		if resp.Failed > 0 {
			return fmt.Errorf("%d of %d emails failed", resp.Failed, resp.Total)
		}
		return nil
	}

	resp, err := w.cfg.Relay.SendConfirmations(ctx, notification.BulkEmailRequest{
		Recipients:     recipients,
		RegistrationID: w.registrationID,
		EventNames:     eventNames,
		PassType:       pass.Name,
		Amount:         pass.Price,
		College:        w.draft.Primary.College,
	})
	if err != nil {
		return err
	}
	if resp.Failed > 0 {
		return fmt.Errorf("%d of %d emails failed", resp.Failed, resp.Total)
	}
	return nil
}

// assembleParticipants trims every record and drops any still missing a
// required field. The primary goes first so the amount lands on row 1.
func (w *Workflow) assembleParticipants() []registration.Participant {
	all := make([]Participant, 0, 1+len(w.draft.AdditionalMembers))
	all = append(all, w.draft.Primary)
	all = append(all, w.draft.AdditionalMembers...)

	cleaned := make([]registration.Participant, 0, len(all))
	for _, p := range all {
		rp := registration.Participant{
			Name:            strings.TrimSpace(p.Name),
			College:         strings.TrimSpace(p.College),
			Email:           strings.TrimSpace(p.Email),
			Phone:           strings.TrimSpace(p.Phone),
			Year:            strings.TrimSpace(p.Year),
			LunchPreference: p.LunchPreference,
		}
		if rp.LunchPreference == "" {
			rp.LunchPreference = "non-veg"
		}
		if rp.Complete() {
			cleaned = append(cleaned, rp)
		}
	}
	return cleaned
}

// PaymentIntent exposes the UPI deep link and QR image for the payment
// screen.
func (w *Workflow) PaymentIntent(upiID, payeeName string) (link, qrURL string, amount int) {
	pass := w.SelectedPass()
	if pass == nil {
		return "", "", 0
	}
	note := fmt.Sprintf("Technovate2026-%s", w.registrationID)
	link = payment.UPILink(upiID, payeeName, pass.Price, note)
	return link, payment.QRCodeURL(link), pass.Price
}

// Reset returns the workflow to a fresh mount.
func (w *Workflow) Reset() {
	*w = Workflow{cfg: w.cfg, screen: ScreenForm, step: 1}
}

// GenerateRegistrationID derives the client-side id from the clock:
// TECH26-<uppercase base36 millis>. Distinct per session, not globally
// unique across clients.
func GenerateRegistrationID(t time.Time) string {
	return "TECH26-" + strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))
}
