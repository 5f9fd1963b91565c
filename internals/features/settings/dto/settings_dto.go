// file: internals/features/settings/dto/settings_dto.go
package dto

import (
	"time"

	model "ems_backend/internals/features/settings/model"
)

/* ===================== REQUESTS ===================== */

type UpdateThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

type UpdateOrgSettingsRequest struct {
	OrgName       *string `json:"org_name" validate:"omitempty,min=2,max=120"`
	Timezone      *string `json:"timezone" validate:"omitempty,max=60"`
	WorkWeekStart *string `json:"work_week_start" validate:"omitempty,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	WorkWeekEnd   *string `json:"work_week_end" validate:"omitempty,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
}

func (r *UpdateOrgSettingsRequest) ApplyToModel(m *model.OrgSettingsModel, now time.Time) {
	if r.OrgName != nil {
		m.OrgName = *r.OrgName
	}
	if r.Timezone != nil {
		m.Timezone = *r.Timezone
	}
	if r.WorkWeekStart != nil {
		m.WorkWeekStart = *r.WorkWeekStart
	}
	if r.WorkWeekEnd != nil {
		m.WorkWeekEnd = *r.WorkWeekEnd
	}
	m.UpdatedAt = now
}

/* ===================== RESPONSES ===================== */

type OrgSettingsResponse struct {
	OrgID         string    `json:"org_id"`
	OrgName       string    `json:"org_name"`
	Timezone      string    `json:"timezone"`
	WorkWeekStart string    `json:"work_week_start"`
	WorkWeekEnd   string    `json:"work_week_end"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToOrgSettingsResponse(m model.OrgSettingsModel) OrgSettingsResponse {
	return OrgSettingsResponse{
		OrgID:         m.OrgID,
		OrgName:       m.OrgName,
		Timezone:      m.Timezone,
		WorkWeekStart: m.WorkWeekStart,
		WorkWeekEnd:   m.WorkWeekEnd,
		UpdatedAt:     m.UpdatedAt,
	}
}
