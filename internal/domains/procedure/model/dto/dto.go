package dto

import (
	"dentsched/internal/domains/procedure/model"
	"dentsched/shared"
	gDto "dentsched/shared/dto"
	gModel "dentsched/shared/model"
	"dentsched/shared/timezone"

	"github.com/google/uuid"
)

type CreateProcedureRequest struct {
	Name            string `json:"name"             validate:"required,max=120"`
	DurationMinutes int    `json:"duration_minutes" validate:"gte=0,lte=720"`
	BufferMinutes   int    `json:"buffer_minutes"   validate:"gte=0,lte=240"`
}

func (c *CreateProcedureRequest) ToModel(tenantID, user string) model.Procedure {
	return model.Procedure{
		ID:              uuid.NewString(),
		TenantID:        tenantID,
		Name:            c.Name,
		DurationMinutes: c.DurationMinutes,
		BufferMinutes:   c.BufferMinutes,
		Metadata:        gModel.NewMetadata(user, timezone.Now()),
	}
}

// UpdateProcedureRequest uses pointers so that a zero buffer can be set explicitly.
type UpdateProcedureRequest struct {
	Name            string `db:"name"             json:"name"             validate:"omitempty,max=120"`
	DurationMinutes *int   `db:"duration_minutes" json:"duration_minutes" validate:"omitempty,gte=0,lte=720"`
	BufferMinutes   *int   `db:"buffer_minutes"   json:"buffer_minutes"   validate:"omitempty,gte=0,lte=240"`
}

func (u *UpdateProcedureRequest) IsEmpty() bool {
	return u.Name == "" && u.DurationMinutes == nil && u.BufferMinutes == nil
}

// Apply returns the procedure as it would look after the update.
func (u *UpdateProcedureRequest) Apply(current model.Procedure) model.Procedure {
	if u.Name != "" {
		current.Name = u.Name
	}

	if u.DurationMinutes != nil {
		current.DurationMinutes = *u.DurationMinutes
	}

	if u.BufferMinutes != nil {
		current.BufferMinutes = *u.BufferMinutes
	}

	return current
}

type ProcedureResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	DurationMinutes    int    `json:"duration_minutes"`
	BufferMinutes      int    `json:"buffer_minutes"`
	ServiceTimeMinutes int    `json:"service_time_minutes"`
	gDto.Metadata
}

func (r *ProcedureResponse) FromModel(model model.Procedure) {
	r.ID = model.ID
	r.Name = model.Name
	r.DurationMinutes = model.DurationMinutes
	r.BufferMinutes = model.BufferMinutes
	r.ServiceTimeMinutes = int(model.ServiceTime().Minutes())
	r.Metadata = gDto.MetadataFrom(model.Metadata)
}

type GetProceduresResponse struct {
	Procedures []ProcedureResponse `json:"procedures"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetProceduresResponse) FromModels(models []model.Procedure, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Procedures = make([]ProcedureResponse, len(models))
	for i, mod := range models {
		r.Procedures[i].FromModel(mod)
	}
}
