package main

import (
	"medexus-backend/config"
	"medexus-backend/internal/domain/entity"
	"medexus-backend/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	// Migrate the schema
	err = db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.HospitalProfile{},
		&entity.DoctorProfile{},
		&entity.SurgeryRequest{},
		&entity.Interest{},
		&entity.AuditLog{},
	)
	if err != nil {
		logrus.Fatalf("Failed to migrate schema: %v", err)
	}

	// Role rows are fixed, create them once
	roles := []entity.Role{
		{ID: entity.RoleIDHospital, RoleName: entity.RoleHospital, Description: "Hospital posting surgery requests"},
		{ID: entity.RoleIDDoctor, RoleName: entity.RoleDoctor, Description: "Doctor browsing and expressing interest"},
	}
	for _, role := range roles {
		if err := db.Where(entity.Role{ID: role.ID}).FirstOrCreate(&role).Error; err != nil {
			logrus.Fatalf("Failed to create role %s: %v", role.RoleName, err)
		}
	}

	logrus.Info("Migration completed successfully")
}
