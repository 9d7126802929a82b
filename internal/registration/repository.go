package registration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kavinak445/technovate-backend/internal/sheets"
)

// Appender appends one flat row to the external spreadsheet.
type Appender interface {
	AppendRow(ctx context.Context, row Row) error
}

// scriptAppender posts each row as JSON to an Apps Script web app.
type scriptAppender struct {
	client *sheets.ScriptClient
}

func NewScriptAppender(client *sheets.ScriptClient) Appender {
	return &scriptAppender{client: client}
}

func (a *scriptAppender) AppendRow(ctx context.Context, row Row) error {
	return a.client.Post(ctx, row)
}

// apiAppender writes through the Sheets API in a fixed column order.
type apiAppender struct {
	client *sheets.Client
	tab    string
}

func NewAPIAppender(client *sheets.Client, tab string) Appender {
	return &apiAppender{client: client, tab: tab}
}

func (a *apiAppender) AppendRow(ctx context.Context, row Row) error {
	amount := ""
	txn := ""
	if row.IsPrimary {
		amount = fmt.Sprintf("%d", row.Amount)
		txn = row.TransactionID
	}
	return a.client.AppendRow(ctx, a.tab, []interface{}{
		row.Timestamp,
		row.RegistrationID,
		row.EventNames,
		row.MemberName,
		row.MemberEmail,
		row.MemberPhone,
		row.College,
		row.Year,
		row.LunchPreference,
		row.PassType,
		amount,
		row.IsPrimary,
		txn,
	})
}

// ErrFallbackUnavailable is returned when Redis is not configured.
var ErrFallbackUnavailable = errors.New("fallback store unavailable")

const fallbackKey = "technovate:fallback_rows"

// FallbackRow is a sheet row parked in Redis after a failed append.
type FallbackRow struct {
	Row
	StoredAt string `json:"storedAt"`
	Reason   string `json:"reason,omitempty"`
}

// Repository owns the sheet appender plus the best-effort Redis list
// that catches rows the external spreadsheet rejected.
type Repository struct {
	appender Appender
	rdb      *redis.Client
}

func NewRepository(appender Appender, rdb *redis.Client) *Repository {
	return &Repository{appender: appender, rdb: rdb}
}

func (r *Repository) Append(ctx context.Context, row Row) error {
	if r.appender == nil {
		return errors.New("no spreadsheet backend configured")
	}
	return r.appender.AppendRow(ctx, row)
}

func (r *Repository) StoreFallback(ctx context.Context, row Row, reason string) error {
	if r.rdb == nil {
		return ErrFallbackUnavailable
	}
	entry := FallbackRow{
		Row:      row,
		StoredAt: time.Now().UTC().Format(time.RFC3339),
		Reason:   reason,
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return r.rdb.RPush(ctx, fallbackKey, raw).Err()
}

func (r *Repository) FallbackRows(ctx context.Context) ([]FallbackRow, error) {
	if r.rdb == nil {
		return nil, ErrFallbackUnavailable
	}
	raws, err := r.rdb.LRange(ctx, fallbackKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	rows := make([]FallbackRow, 0, len(raws))
	for _, raw := range raws {
		var fr FallbackRow
		if err := json.Unmarshal([]byte(raw), &fr); err != nil {
			continue
		}
		rows = append(rows, fr)
	}
	return rows, nil
}

func (r *Repository) FallbackCount(ctx context.Context) (int64, error) {
	if r.rdb == nil {
		return 0, ErrFallbackUnavailable
	}
	return r.rdb.LLen(ctx, fallbackKey).Result()
}

// decodeFallbackEntry parses one stored list entry.
func decodeFallbackEntry(raw string) (*FallbackRow, error) {
	var fr FallbackRow
	if err := json.Unmarshal([]byte(raw), &fr); err != nil {
		return nil, fmt.Errorf("undecodable fallback entry: %w", err)
	}
	return &fr, nil
}

// PopFallback removes and returns the oldest decodable parked row.
// Undecodable entries are dropped and the next one is tried, so a
// corrupt entry never hides valid rows behind it. A nil row with nil
// error means the list is empty.
func (r *Repository) PopFallback(ctx context.Context) (*FallbackRow, error) {
	if r.rdb == nil {
		return nil, ErrFallbackUnavailable
	}
	for {
		raw, err := r.rdb.LPop(ctx, fallbackKey).Result()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		fr, err := decodeFallbackEntry(raw)
		if err != nil {
			log.Printf("⚠️ Dropping corrupt fallback entry: %v", err)
			continue
		}
		return fr, nil
	}
}

// RequeueFallback puts a row back at the tail after a failed retry.
func (r *Repository) RequeueFallback(ctx context.Context, fr FallbackRow) error {
	if r.rdb == nil {
		return ErrFallbackUnavailable
	}
	raw, err := json.Marshal(fr)
	if err != nil {
		return err
	}
	return r.rdb.RPush(ctx, fallbackKey, raw).Err()
}
