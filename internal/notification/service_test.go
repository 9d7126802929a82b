package notification

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	failFor map[string]error
	sent    []string
}

func (f *fakeTransport) Send(to, subject, htmlBody string) error {
	if err, ok := f.failFor[to]; ok {
		return err
	}
	f.sent = append(f.sent, to)
	return nil
}

func bulkRequest() BulkEmailRequest {
	return BulkEmailRequest{
		Recipients: []Recipient{
			{Name: "Arun Kumar", Email: "arun@example.com"},
			{Name: "Priya Sharma", Email: "priya@example.com"},
		},
		RegistrationID: "TECH26-ABC123",
		EventNames:     "Code Sprint Challenge",
		PassType:       "2 Members Pass",
		Amount:         350,
		College:        "GCT",
	}
}

func TestSendConfirmationsContinuesOnFailure(t *testing.T) {
	transport := &fakeTransport{failFor: map[string]error{
		"arun@example.com": errors.New("smtp: 550 mailbox unavailable"),
	}}
	svc := NewService(transport, nil)

	resp := svc.SendConfirmations(context.Background(), bulkRequest())

	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 1, resp.Sent)
	assert.Equal(t, 1, resp.Failed)
	require.Len(t, resp.Results, 2)
	assert.False(t, resp.Results[0].Success)
	assert.Contains(t, resp.Results[0].Error, "mailbox unavailable")
	assert.True(t, resp.Results[1].Success)
	assert.Equal(t, []string{"priya@example.com"}, transport.sent)
}

func TestSendSingleWrapsOneRecipient(t *testing.T) {
	transport := &fakeTransport{}
	svc := NewService(transport, nil)

	resp := svc.SendSingle(context.Background(), SingleEmailRequest{
		Name:           "Arun Kumar",
		Email:          "arun@example.com",
		RegistrationID: "TECH26-ABC123",
		EventNames:     "Tech Quiz Bowl",
		PassType:       "Individual Pass",
		Amount:         200,
	})

	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, 1, resp.Sent)
	assert.Equal(t, []string{"arun@example.com"}, transport.sent)
}

func TestSendVerificationPendingCarriesTransactionID(t *testing.T) {
	captured := &capturingTransport{}
	svc := NewService(captured, nil)

	resp := svc.SendVerificationPending(context.Background(), VerificationPendingRequest{
		Recipients:      []Recipient{{Name: "Arun Kumar", Email: "arun@example.com"}},
		RegistrationID:  "TECH26-ABC123",
		EventName:       "Code Sprint Challenge",
		PassType:        "2 Members Pass",
		Amount:          350,
		TransactionID:   "123456789012",
		TeamMembersList: "Priya Sharma",
	})

	assert.Equal(t, 1, resp.Sent)
	require.Len(t, captured.bodies, 1)
	assert.Contains(t, captured.subjects[0], "Payment Under Verification")
	assert.Contains(t, captured.bodies[0], "PENDING VERIFICATION")
	assert.Contains(t, captured.bodies[0], "123456789012")
	assert.Contains(t, captured.bodies[0], "Priya Sharma")
}

type capturingTransport struct {
	subjects []string
	bodies   []string
}

func (c *capturingTransport) Send(to, subject, htmlBody string) error {
	c.subjects = append(c.subjects, subject)
	c.bodies = append(c.bodies, htmlBody)
	return nil
}

func TestRenderConfirmation(t *testing.T) {
	subject, body, err := RenderConfirmation(TemplateData{
		Name:           "Arun Kumar",
		RegistrationID: "TECH26-ABC123",
		EventNames:     "Code Sprint Challenge",
		PassType:       "Individual Pass",
		Amount:         200,
		Date:           "March 13, 2026",
		Venue:          "Government College of Technology, Coimbatore",
	})
	require.NoError(t, err)
	assert.Contains(t, subject, "Registration Confirmed")
	assert.Contains(t, body, "TECH26-ABC123")
	assert.Contains(t, body, "Code Sprint Challenge")
	assert.Contains(t, body, "March 13, 2026")
}

func TestRenderConfirmationFallsBackForEmptyFields(t *testing.T) {
	_, body, err := RenderConfirmation(TemplateData{})
	require.NoError(t, err)
	assert.Contains(t, body, "Dear Participant")
	assert.True(t, strings.Contains(body, "N/A"))
}

func TestRenderVerificationPendingOmitsEmptyTeamList(t *testing.T) {
	_, body, err := RenderVerificationPending(TemplateData{RegistrationID: "TECH26-ABC123"})
	require.NoError(t, err)
	assert.NotContains(t, body, "Team Members")
}
