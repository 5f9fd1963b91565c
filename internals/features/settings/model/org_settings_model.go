package model

import "time"

// OrgSettingsModel adalah single-record store untuk halaman settings.
type OrgSettingsModel struct {
	OrgID         string    `json:"org_id"`
	OrgName       string    `json:"org_name"`
	Timezone      string    `json:"timezone"`
	WorkWeekStart string    `json:"work_week_start"`
	WorkWeekEnd   string    `json:"work_week_end"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (m OrgSettingsModel) RecordID() string { return m.OrgID }
