package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"simplexdss/internal/module/history/domain"
)

// CreateRecordInput carries a finished solve into the archive.
type CreateRecordInput struct {
	Status       string
	OptimalValue *float64
	Iterations   int
	Request      json.RawMessage
	Result       json.RawMessage
}

// RecordSummary is the listing shape: the documents are omitted.
type RecordSummary struct {
	ID           uuid.UUID `json:"id"`
	Status       string    `json:"status"`
	OptimalValue *float64  `json:"optimal_value"`
	Iterations   int       `json:"iterations"`
	CreatedAt    time.Time `json:"created_at"`
}

// RecordDetail is the full record including both documents.
type RecordDetail struct {
	RecordSummary
	Request json.RawMessage `json:"request"`
	Result  json.RawMessage `json:"result"`
}

// ToSummary converts a stored record to its listing shape.
func ToSummary(r *domain.SolveRecord) RecordSummary {
	return RecordSummary{
		ID:           r.ID,
		Status:       r.Status,
		OptimalValue: r.OptimalValue,
		Iterations:   r.Iterations,
		CreatedAt:    r.CreatedAt,
	}
}

// ToDetail converts a stored record to its full shape.
func ToDetail(r *domain.SolveRecord) RecordDetail {
	return RecordDetail{
		RecordSummary: ToSummary(r),
		Request:       json.RawMessage(r.Request),
		Result:        json.RawMessage(r.Result),
	}
}
