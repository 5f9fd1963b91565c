// file: internals/seeds/settings.go
package seeds

import (
	"time"

	settingsModel "ems_backend/internals/features/settings/model"
)

// OrgSettings: satu record konfigurasi organisasi.
func OrgSettings(now time.Time) []settingsModel.OrgSettingsModel {
	return []settingsModel.OrgSettingsModel{
		{
			OrgID:         "org-default",
			OrgName:       "Acme Corp",
			Timezone:      "Asia/Kolkata",
			WorkWeekStart: "Monday",
			WorkWeekEnd:   "Friday",
			UpdatedAt:     now,
		},
	}
}
