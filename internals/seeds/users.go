// file: internals/seeds/users.go
package seeds

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"ems_backend/internals/constants"
	userModel "ems_backend/internals/features/users/auth/model"
)

const (
	DemoAdminEmail    = "admin@example.com"
	DemoAdminPassword = "admin123"
)

// Users: akun demo supaya portal langsung bisa login.
func Users(now time.Time) []userModel.UserModel {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DemoAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] gagal hash password seed admin: %v", err)
		hashed = []byte{}
	}

	return []userModel.UserModel{
		{
			UserID:    "user-admin",
			UserName:  "Demo Admin",
			Email:     DemoAdminEmail,
			Password:  string(hashed),
			Role:      constants.RoleAdmin,
			Theme:     userModel.ThemeLight,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
