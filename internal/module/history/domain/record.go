package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SolveRecord is one archived solve: the submitted problem and the full
// engine response as JSON documents, plus the summary fields the listing
// endpoint returns and sorts on.
type SolveRecord struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Status       string         `gorm:"type:varchar(32);not null;index" json:"status"`
	OptimalValue *float64       `json:"optimal_value"`
	Iterations   int            `gorm:"not null" json:"iterations"`
	Request      datatypes.JSON `gorm:"not null" json:"request"`
	Result       datatypes.JSON `gorm:"not null" json:"result"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
}

// TableName overrides the default table name.
func (SolveRecord) TableName() string {
	return "solve_records"
}

// BeforeCreate assigns the record id.
func (r *SolveRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
