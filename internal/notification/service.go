package notification

import (
	"context"
	"log"

	"github.com/kavinak445/technovate-backend/config"
	"github.com/kavinak445/technovate-backend/internal/auditlog"
)

type Service struct {
	transport Transport
	auditSvc  *auditlog.Publisher
}

func NewService(transport Transport, auditSvc *auditlog.Publisher) *Service {
	return &Service{transport: transport, auditSvc: auditSvc}
}

// SendConfirmations emails every recipient the confirmation template.
// Sends run sequentially; a failure for one recipient is recorded and
// the loop continues, matching the sheet fan-out contract.
func (s *Service) SendConfirmations(ctx context.Context, req BulkEmailRequest) *BulkEmailResponse {
	resp := &BulkEmailResponse{
		Success: true,
		Total:   len(req.Recipients),
		Results: make([]EmailResult, 0, len(req.Recipients)),
	}

	for _, r := range req.Recipients {
		data := TemplateData{
			Name:           r.Name,
			RegistrationID: req.RegistrationID,
			EventNames:     req.EventNames,
			PassType:       req.PassType,
			Amount:         req.Amount,
			College:        req.College,
			Date:           config.FestDate,
			Venue:          config.FestVenue,
		}
		resp.Results = append(resp.Results, s.sendOne(r.Email, RenderConfirmation, data))
	}
	s.tally(ctx, resp, "confirmation", req.RegistrationID)
	return resp
}

// SendVerificationPending emails the PENDING VERIFICATION template to
// every recipient, carrying the submitted transaction id.
func (s *Service) SendVerificationPending(ctx context.Context, req VerificationPendingRequest) *BulkEmailResponse {
	resp := &BulkEmailResponse{
		Success: true,
		Total:   len(req.Recipients),
		Results: make([]EmailResult, 0, len(req.Recipients)),
	}

	for _, r := range req.Recipients {
		data := TemplateData{
			Name:            r.Name,
			RegistrationID:  req.RegistrationID,
			EventNames:      req.EventName,
			PassType:        req.PassType,
			Amount:          req.Amount,
			College:         req.College,
			Date:            config.FestDate,
			Venue:           config.FestVenue,
			TransactionID:   req.TransactionID,
			TeamMembersList: req.TeamMembersList,
		}
		resp.Results = append(resp.Results, s.sendOne(r.Email, RenderVerificationPending, data))
	}
	s.tally(ctx, resp, "verification-pending", req.RegistrationID)
	return resp
}

// SendSingle handles the one-recipient endpoint.
func (s *Service) SendSingle(ctx context.Context, req SingleEmailRequest) *BulkEmailResponse {
	return s.SendConfirmations(ctx, BulkEmailRequest{
		Recipients:     []Recipient{{Name: req.Name, Email: req.Email}},
		RegistrationID: req.RegistrationID,
		EventNames:     req.EventNames,
		PassType:       req.PassType,
		Amount:         req.Amount,
		College:        req.College,
	})
}

type renderFunc func(TemplateData) (string, string, error)

func (s *Service) sendOne(to string, render renderFunc, data TemplateData) EmailResult {
	subject, body, err := render(data)
	if err != nil {
		return EmailResult{Email: to, Success: false, Error: err.Error()}
	}
	if err := s.transport.Send(to, subject, body); err != nil {
		log.Printf("❌ Failed to send email to %s: %v", to, err)
		return EmailResult{Email: to, Success: false, Error: err.Error()}
	}
	log.Printf("✅ Email sent to %s", to)
	return EmailResult{Email: to, Success: true}
}

func (s *Service) tally(ctx context.Context, resp *BulkEmailResponse, kind, registrationID string) {
	for _, r := range resp.Results {
		if r.Success {
			resp.Sent++
		} else {
			resp.Failed++
		}
	}
	if s.auditSvc != nil {
		s.auditSvc.Publish(ctx, auditlog.Event{
			Action:         auditlog.ActionEmailsSent,
			RegistrationID: registrationID,
			Details: map[string]interface{}{
				"kind":   kind,
				"total":  resp.Total,
				"sent":   resp.Sent,
				"failed": resp.Failed,
			},
		})
	}
}
