package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kavinak445/technovate-backend/internal/notification"
	"github.com/kavinak445/technovate-backend/internal/registration"
)

type fakeRelay struct {
	submitErr    error
	submitResp   *registration.SubmitResponse
	emailErr     error
	emailResp    *notification.BulkEmailResponse
	submitted    []registration.SubmitRequest
	confirms     []notification.BulkEmailRequest
	verification []notification.VerificationPendingRequest
}

func (f *fakeRelay) SubmitToSheets(_ context.Context, req registration.SubmitRequest) (*registration.SubmitResponse, error) {
	f.submitted = append(f.submitted, req)
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	if f.submitResp != nil {
		return f.submitResp, nil
	}
	return &registration.SubmitResponse{
		Success:  true,
		Total:    len(req.Participants),
		Appended: len(req.Participants),
	}, nil
}

func (f *fakeRelay) SendConfirmations(_ context.Context, req notification.BulkEmailRequest) (*notification.BulkEmailResponse, error) {
	f.confirms = append(f.confirms, req)
	if f.emailErr != nil {
		return nil, f.emailErr
	}
	if f.emailResp != nil {
		return f.emailResp, nil
	}
	return &notification.BulkEmailResponse{Success: true, Total: len(req.Recipients), Sent: len(req.Recipients)}, nil
}

func (f *fakeRelay) SendVerificationPending(_ context.Context, req notification.VerificationPendingRequest) (*notification.BulkEmailResponse, error) {
	f.verification = append(f.verification, req)
	if f.emailErr != nil {
		return nil, f.emailErr
	}
	return &notification.BulkEmailResponse{Success: true, Total: len(req.Recipients), Sent: len(req.Recipients)}, nil
}

func validPrimary() Participant {
	return Participant{
		Name:    "Arun Kumar",
		College: "GCT Coimbatore",
		Email:   "arun@example.com",
		Phone:   "9876543210",
		Year:    "3rd",
	}
}

func validMember() Participant {
	return Participant{
		Name:    "Priya Sharma",
		College: "GCT Coimbatore",
		Email:   "priya@example.com",
		Phone:   "9876543211",
		Year:    "2nd",
	}
}

func newTestWorkflow(relay Relay) *Workflow {
	return New(Config{
		Relay: relay,
		Now:   func() time.Time { return time.Unix(1770000000, 0) },
	})
}

func TestStepOneValidation(t *testing.T) {
	t.Run("valid input advances", func(t *testing.T) {
		w := newTestWorkflow(&fakeRelay{})
		w.SetPrimary(validPrimary())
		require.NoError(t, w.Next())
		assert.Equal(t, 2, w.Step())
	})

	t.Run("missing field blocks", func(t *testing.T) {
		w := newTestWorkflow(&fakeRelay{})
		p := validPrimary()
		p.College = ""
		w.SetPrimary(p)
		assert.ErrorIs(t, w.Next(), ErrAllFieldsRequired)
		assert.Equal(t, 1, w.Step())
	})

	t.Run("malformed email blocks", func(t *testing.T) {
		w := newTestWorkflow(&fakeRelay{})
		p := validPrimary()
		p.Email = "arun@no-tld"
		w.SetPrimary(p)
		assert.ErrorIs(t, w.Next(), ErrInvalidEmail)
		assert.Equal(t, 1, w.Step())
	})

	t.Run("short phone blocks", func(t *testing.T) {
		w := newTestWorkflow(&fakeRelay{})
		p := validPrimary()
		p.Phone = "98765"
		w.SetPrimary(p)
		assert.ErrorIs(t, w.Next(), ErrInvalidPhone)
		assert.Equal(t, 1, w.Step())
	})
}

func TestStepTwoValidation(t *testing.T) {
	w := newTestWorkflow(&fakeRelay{})
	w.SetPrimary(validPrimary())
	require.NoError(t, w.Next())

	assert.ErrorIs(t, w.Next(), ErrNoEventsSelected)

	w.ToggleEvent("code-sprint")
	assert.ErrorIs(t, w.Next(), ErrNoPassSelected)

	require.NoError(t, w.SelectPass("duo"))
	require.NoError(t, w.Next())
	assert.Equal(t, 3, w.Step())
}

func TestPassSelectionShapesMembers(t *testing.T) {
	w := newTestWorkflow(&fakeRelay{})

	require.NoError(t, w.SelectPass("quad"))
	assert.Len(t, w.Draft().AdditionalMembers, 3)

	// records must be independent
	require.NoError(t, w.SetMember(0, validMember()))
	assert.Empty(t, w.Draft().AdditionalMembers[1].Name)
	assert.Equal(t, "Priya Sharma", w.Draft().AdditionalMembers[0].Name)
}

func TestPassSelectionIdempotent(t *testing.T) {
	w := newTestWorkflow(&fakeRelay{})

	require.NoError(t, w.SelectPass("duo"))
	require.NoError(t, w.SelectPass("duo"))
	assert.Len(t, w.Draft().AdditionalMembers, 1)

	require.NoError(t, w.SelectPass("individual"))
	assert.Empty(t, w.Draft().AdditionalMembers)
}

func TestBackKeepsState(t *testing.T) {
	w := newTestWorkflow(&fakeRelay{})
	w.SetPrimary(validPrimary())
	require.NoError(t, w.Next())
	w.ToggleEvent("tech-quiz")
	require.NoError(t, w.SelectPass("duo"))

	w.Back()
	assert.Equal(t, 1, w.Step())
	assert.Equal(t, "Arun Kumar", w.Draft().Primary.Name)
	assert.Equal(t, []string{"tech-quiz"}, w.Draft().SelectedEvents)
	assert.Equal(t, "duo", w.Draft().PassType)
}

func TestSubmitDuoWithIncompleteMember(t *testing.T) {
	w := newTestWorkflow(&fakeRelay{})
	w.SetPrimary(validPrimary())
	require.NoError(t, w.Next())
	w.ToggleEvent("code-sprint")
	require.NoError(t, w.SelectPass("duo"))
	require.NoError(t, w.Next())

	m := validMember()
	m.Phone = ""
	require.NoError(t, w.SetMember(0, m))

	err := w.Submit()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "member 2")
	assert.Equal(t, 3, w.Step())
	assert.Equal(t, ScreenForm, w.Screen())
}

func TestIndividualPassSubmitsSingleParticipant(t *testing.T) {
	relay := &fakeRelay{}
	w := newTestWorkflow(relay)
	w.SetPrimary(validPrimary())
	require.NoError(t, w.Next())
	w.ToggleEvent("debug-master")
	require.NoError(t, w.SelectPass("individual"))
	require.NoError(t, w.Next())

	assert.Empty(t, w.Draft().AdditionalMembers)
	require.NoError(t, w.Submit())
	assert.Equal(t, ScreenPaymentPending, w.Screen())
	assert.NotEmpty(t, w.RegistrationID())

	require.NoError(t, w.SetTransactionID("123456789012"))
	require.NoError(t, w.ConfirmPayment(context.Background()))

	require.Len(t, relay.submitted, 1)
	assert.Len(t, relay.submitted[0].Participants, 1)
	assert.Equal(t, 200, relay.submitted[0].Amount)
	assert.Equal(t, "Individual Pass", relay.submitted[0].PassType)
	assert.Equal(t, ScreenSuccess, w.Screen())
}

func TestAssemblyFiltersAndCounts(t *testing.T) {
	relay := &fakeRelay{}
	w := newTestWorkflow(relay)
	p := validPrimary()
	p.Name = "  Arun Kumar  " // trimmed during assembly
	w.SetPrimary(p)
	require.NoError(t, w.Next())
	w.ToggleEvent("code-sprint")
	require.NoError(t, w.SelectPass("trio"))
	require.NoError(t, w.Next())
	require.NoError(t, w.SetMember(0, validMember()))
	m2 := validMember()
	m2.Name = "Kavin A K"
	m2.Email = "kavin@example.com"
	require.NoError(t, w.SetMember(1, m2))

	require.NoError(t, w.Submit())
	require.NoError(t, w.SetTransactionID("222233334444"))
	require.NoError(t, w.ConfirmPayment(context.Background()))

	require.Len(t, relay.submitted, 1)
	participants := relay.submitted[0].Participants
	assert.Len(t, participants, 3) // primary + 2 valid members
	assert.Equal(t, "Arun Kumar", participants[0].Name)
}

func TestWhitespaceOnlyParticipantsAbortConfirmation(t *testing.T) {
	relay := &fakeRelay{}
	w := newTestWorkflow(relay)
	p := validPrimary()
	p.Name = "   " // passes the non-empty step gate, trims to nothing
	w.SetPrimary(p)
	require.NoError(t, w.Next())
	w.ToggleEvent("code-sprint")
	require.NoError(t, w.SelectPass("individual"))
	require.NoError(t, w.Next())
	require.NoError(t, w.Submit())
	require.NoError(t, w.SetTransactionID("123456789012"))

	err := w.ConfirmPayment(context.Background())
	assert.ErrorIs(t, err, ErrNoValidParticipants)
	assert.Empty(t, relay.submitted)
	assert.Equal(t, ScreenPaymentPending, w.Screen())
}

func TestPaymentIntent(t *testing.T) {
	w := newTestWorkflow(&fakeRelay{})
	w.SetPrimary(validPrimary())
	require.NoError(t, w.Next())
	w.ToggleEvent("tech-quiz")
	require.NoError(t, w.SelectPass("duo"))
	require.NoError(t, w.Next())
	require.NoError(t, w.SetMember(0, validMember()))
	require.NoError(t, w.Submit())

	link, qrURL, amount := w.PaymentIntent("kavinak445@okaxis", "Technovate 2026")
	assert.Equal(t, 350, amount)
	assert.Contains(t, link, "upi://pay?pa=kavinak445@okaxis")
	assert.Contains(t, link, "am=350")
	assert.Contains(t, link, w.RegistrationID())
	assert.Contains(t, qrURL, "api.qrserver.com")
}

func TestPaymentIntentWithoutPass(t *testing.T) {
	w := newTestWorkflow(&fakeRelay{})

	link, qrURL, amount := w.PaymentIntent("kavinak445@okaxis", "Technovate 2026")
	assert.Empty(t, link)
	assert.Empty(t, qrURL)
	assert.Zero(t, amount)
}

func TestConfirmTwiceRejected(t *testing.T) {
	relay := &fakeRelay{}
	w := newTestWorkflow(relay)
	w.SetPrimary(validPrimary())
	require.NoError(t, w.Next())
	w.ToggleEvent("code-sprint")
	require.NoError(t, w.SelectPass("individual"))
	require.NoError(t, w.Next())
	require.NoError(t, w.Submit())
	require.NoError(t, w.SetTransactionID("123456789012"))

	require.NoError(t, w.ConfirmPayment(context.Background()))
	assert.Error(t, w.ConfirmPayment(context.Background()))
	assert.Len(t, relay.submitted, 1)
}

func TestTransactionIDValidation(t *testing.T) {
	w := newTestWorkflow(&fakeRelay{})

	err := w.SetTransactionID("12345")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly 12 digits")

	assert.Error(t, w.SetTransactionID(""))
	assert.Error(t, w.SetTransactionID("12345678901a"))
	assert.NoError(t, w.SetTransactionID("123456789012"))
}

func TestConfirmWithoutProofBlocked(t *testing.T) {
	relay := &fakeRelay{}
	w := newTestWorkflow(relay)
	w.SetPrimary(validPrimary())
	require.NoError(t, w.Next())
	w.ToggleEvent("code-sprint")
	require.NoError(t, w.SelectPass("individual"))
	require.NoError(t, w.Next())
	require.NoError(t, w.Submit())

	err := w.ConfirmPayment(context.Background())
	require.Error(t, err)
	assert.Empty(t, relay.submitted)
	assert.Equal(t, ScreenPaymentPending, w.Screen())
}

func TestPersistenceFailureKeepsPaymentScreen(t *testing.T) {
	relay := &fakeRelay{submitErr: errors.New("network down")}
	w := newTestWorkflow(relay)
	w.SetPrimary(validPrimary())
	require.NoError(t, w.Next())
	w.ToggleEvent("code-sprint")
	require.NoError(t, w.SelectPass("individual"))
	require.NoError(t, w.Next())
	require.NoError(t, w.Submit())
	require.NoError(t, w.SetTransactionID("123456789012"))

	err := w.ConfirmPayment(context.Background())
	require.Error(t, err)
	assert.Equal(t, ScreenPaymentPending, w.Screen())
	assert.Empty(t, relay.confirms)

	// retry succeeds once the network is back
	relay.submitErr = nil
	require.NoError(t, w.ConfirmPayment(context.Background()))
	assert.Equal(t, ScreenSuccess, w.Screen())
}

func TestEmailFailureStillReachesTerminal(t *testing.T) {
	relay := &fakeRelay{emailErr: errors.New("smtp refused")}
	w := newTestWorkflow(relay)
	w.SetPrimary(validPrimary())
	require.NoError(t, w.Next())
	w.ToggleEvent("code-sprint")
	require.NoError(t, w.SelectPass("individual"))
	require.NoError(t, w.Next())
	require.NoError(t, w.Submit())
	require.NoError(t, w.SetTransactionID("123456789012"))

	require.NoError(t, w.ConfirmPayment(context.Background()))
	assert.Equal(t, ScreenSuccess, w.Screen())
	assert.Contains(t, w.Notice(), "email notification may be delayed")
}

func TestDeferVerificationMode(t *testing.T) {
	relay := &fakeRelay{}
	w := New(Config{
		Relay:             relay,
		DeferVerification: true,
		Now:               func() time.Time { return time.Unix(1770000000, 0) },
	})
	w.SetPrimary(validPrimary())
	require.NoError(t, w.Next())
	w.ToggleEvent("code-sprint")
	require.NoError(t, w.SelectPass("duo"))
	require.NoError(t, w.Next())
	require.NoError(t, w.SetMember(0, validMember()))
	require.NoError(t, w.Submit())
	require.NoError(t, w.SetTransactionID("999988887777"))

	require.NoError(t, w.ConfirmPayment(context.Background()))
	assert.Equal(t, ScreenVerificationPending, w.Screen())
	require.Len(t, relay.verification, 1)
	assert.Equal(t, "999988887777", relay.verification[0].TransactionID)
	assert.Empty(t, relay.confirms)
}

func TestReset(t *testing.T) {
	w := newTestWorkflow(&fakeRelay{})
	w.SetPrimary(validPrimary())
	require.NoError(t, w.Next())

	w.Reset()
	assert.Equal(t, 1, w.Step())
	assert.Equal(t, ScreenForm, w.Screen())
	assert.Empty(t, w.Draft().Primary.Name)
	assert.Empty(t, w.RegistrationID())
}

func TestGenerateRegistrationID(t *testing.T) {
	id := GenerateRegistrationID(time.UnixMilli(1770000000000))
	assert.Equal(t, "TECH26-ML4KASQO", id)
}
