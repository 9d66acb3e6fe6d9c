package model

import (
	"dentsched/shared/model"
	"errors"
	"time"
)

const (
	TableName  = "procedures"
	EntityName = "procedure"

	FieldID              = "id"
	FieldTenantID        = "tenant_id"
	FieldName            = "name"
	FieldDurationMinutes = "duration_minutes"
	FieldBufferMinutes   = "buffer_minutes"
	FieldCreatedAt       = "created_at"
)

var (
	ErrNotFound = errors.New("procedure not found")
)

// Procedure is a bookable treatment. Each booking occupies the practitioner for
// the procedure's duration plus its cleanup buffer.
type Procedure struct {
	ID              string `db:"id"`
	TenantID        string `db:"tenant_id"`
	Name            string `db:"name"`
	DurationMinutes int    `db:"duration_minutes"`
	BufferMinutes   int    `db:"buffer_minutes"`
	model.Metadata
}

func (p Procedure) ServiceTime() time.Duration {
	return time.Duration(p.DurationMinutes+p.BufferMinutes) * time.Minute
}
