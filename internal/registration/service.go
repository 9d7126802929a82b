package registration

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kavinak445/technovate-backend/internal/auditlog"
)

type Service struct {
	repo     *Repository
	auditSvc *auditlog.Publisher
}

func NewService(repo *Repository, auditSvc *auditlog.Publisher) *Service {
	return &Service{repo: repo, auditSvc: auditSvc}
}

// BuildRows flattens a registration into one sheet row per participant.
// The amount and transaction id ride on the primary row only.
func BuildRows(req SubmitRequest) []Row {
	rows := make([]Row, 0, len(req.Participants))
	for i, p := range req.Participants {
		lunch := p.LunchPreference
		if lunch == "" {
			lunch = "non-veg"
		}
		row := Row{
			Timestamp:       req.Timestamp,
			RegistrationID:  req.RegistrationID,
			EventNames:      req.EventNames,
			MemberName:      strings.TrimSpace(p.Name),
			MemberEmail:     strings.TrimSpace(p.Email),
			MemberPhone:     strings.TrimSpace(p.Phone),
			College:         strings.TrimSpace(p.College),
			Year:            strings.TrimSpace(p.Year),
			LunchPreference: lunch,
			PassType:        req.PassType,
			IsPrimary:       i == 0,
		}
		if i == 0 {
			row.Amount = req.Amount
			row.TransactionID = req.TransactionID
		}
		rows = append(rows, row)
	}
	return rows
}

// Submit fans the registration out as one sheet append per participant.
// Appends run sequentially to preserve row ordering in the sheet; a
// failed append is parked in the fallback store and reported in the
// result array, never aborting the remaining rows.
func (s *Service) Submit(ctx context.Context, req SubmitRequest, ip string) *SubmitResponse {
	if req.Timestamp == "" {
		req.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	if req.RegistrationID == "" {
		// Clients generate TECH26-<base36 millis>; when the field is
		// missing the relay issues a collision-safe id instead.
		req.RegistrationID = "TECH26-" + strings.ToUpper(uuid.NewString()[:8])
	}

	rows := BuildRows(req)
	resp := &SubmitResponse{
		Success:        true,
		RegistrationID: req.RegistrationID,
		Total:          len(rows),
		Results:        make([]RowResult, 0, len(rows)),
	}

	for _, row := range rows {
		result := RowResult{Member: row.MemberName, Email: row.MemberEmail, Success: true}
		if err := s.repo.Append(ctx, row); err != nil {
			log.Printf("❌ Sheet append failed for %s (%s): %v", row.MemberName, req.RegistrationID, err)
			result.Success = false
			result.Error = err.Error()
			resp.Failed++
			if ferr := s.repo.StoreFallback(ctx, row, err.Error()); ferr != nil && ferr != ErrFallbackUnavailable {
				log.Printf("⚠️ Fallback store failed for %s: %v", row.MemberName, ferr)
			}
		} else {
			resp.Appended++
		}
		resp.Results = append(resp.Results, result)
	}

	if s.auditSvc != nil {
		s.auditSvc.Publish(ctx, auditlog.Event{
			Action:         auditlog.ActionRegistrationSubmitted,
			RegistrationID: req.RegistrationID,
			IPAddress:      ip,
			Details: map[string]interface{}{
				"passType": req.PassType,
				"amount":   req.Amount,
				"total":    resp.Total,
				"appended": resp.Appended,
				"failed":   resp.Failed,
			},
		})
	}

	return resp
}

// SyncResult summarizes a fallback retry pass.
type SyncResult struct {
	Attempted int `json:"attempted"`
	Synced    int `json:"synced"`
	Remaining int `json:"remaining"`
}

// SyncFallback retries every parked row once against the sheet backend.
// Rows that fail again go back to the tail of the list.
func (s *Service) SyncFallback(ctx context.Context) (*SyncResult, error) {
	count, err := s.repo.FallbackCount(ctx)
	if err != nil {
		return nil, err
	}

	res := &SyncResult{}
	for i := int64(0); i < count; i++ {
		fr, err := s.repo.PopFallback(ctx)
		if err != nil {
			return nil, err
		}
		if fr == nil {
			break
		}
		res.Attempted++
		if err := s.repo.Append(ctx, fr.Row); err != nil {
			fr.Reason = err.Error()
			if rqErr := s.repo.RequeueFallback(ctx, *fr); rqErr != nil {
				log.Printf("⚠️ Requeue failed, dropping row for %s: %v", fr.MemberName, rqErr)
			}
			res.Remaining++
		} else {
			res.Synced++
		}
	}

	if s.auditSvc != nil && res.Attempted > 0 {
		s.auditSvc.Publish(ctx, auditlog.Event{
			Action: auditlog.ActionFallbackSynced,
			Details: map[string]interface{}{
				"attempted": res.Attempted,
				"synced":    res.Synced,
				"remaining": res.Remaining,
			},
		})
	}
	return res, nil
}

func (s *Service) FallbackRows(ctx context.Context) ([]FallbackRow, error) {
	return s.repo.FallbackRows(ctx)
}
