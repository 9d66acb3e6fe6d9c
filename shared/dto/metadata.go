package dto

import (
	"dentsched/shared/constant"
	"dentsched/shared/model"
	"dentsched/shared/timezone"
)

// Metadata is the audit trail rendered in clinic time.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	CreatedBy  string `json:"created_by,omitempty"`
	ModifiedAt string `json:"modified_at,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

// MetadataFrom omits the modification pair for records never touched after creation.
func MetadataFrom(m model.Metadata) Metadata {
	res := Metadata{
		CreatedAt: timezone.Format(m.CreatedAt, constant.DateFormat),
		CreatedBy: m.CreatedBy,
	}

	if m.ModifiedAt.After(m.CreatedAt) {
		res.ModifiedAt = timezone.Format(m.ModifiedAt, constant.DateFormat)
		res.ModifiedBy = m.ModifiedBy
	}

	return res
}
