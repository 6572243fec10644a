package main

import (
	"medexus-backend/config"
	"medexus-backend/internal/domain/entity"
	"medexus-backend/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type hospitalSeed struct {
	Name        string
	Email       string
	Institution string
}

type doctorSeed struct {
	Name           string
	Email          string
	Specialization string
	Bio            string
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	// Clear existing data before reseeding
	db.Exec("DELETE FROM audit_logs")
	db.Exec("DELETE FROM interests")
	db.Exec("DELETE FROM surgery_requests")
	db.Exec("DELETE FROM hospital_profiles")
	db.Exec("DELETE FROM doctor_profiles")
	db.Exec("DELETE FROM users")

	hospitals := []hospitalSeed{
		{"Dr. Sarah Johnson", "admin@cityhospital.com", "City General Hospital"},
		{"Dr. Michael Chen", "admin@valleymed.com", "Valley Medical Center"},
		{"Dr. Emily Rodriguez", "admin@regionalhospital.com", "Regional Health Hospital"},
	}

	doctors := []doctorSeed{
		{"Dr. James Wilson", "james.wilson@medexus.com", "Orthopedic Surgeon", "15+ years experience in joint replacement and trauma surgery"},
		{"Dr. Lisa Anderson", "lisa.anderson@medexus.com", "Cardiologist", "Specialized in cardiac surgery and interventional cardiology"},
		{"Dr. Robert Kumar", "robert.kumar@medexus.com", "General Surgeon", "Expert in minimally invasive surgical techniques"},
		{"Dr. Maria Garcia", "maria.garcia@medexus.com", "Neurologist", "Specialized in neurosurgery and brain tumor treatments"},
		{"Dr. David Park", "david.park@medexus.com", "Orthopedic Surgeon", "Sports medicine and arthroscopic surgery specialist"},
	}

	hospitalUsers := make([]*entity.User, 0, len(hospitals))
	for _, h := range hospitals {
		user := &entity.User{
			RoleID:   entity.RoleIDHospital,
			Email:    h.Email,
			Password: mustHash("hospital123"),
			FullName: h.Name,
			HospitalProfile: &entity.HospitalProfile{
				InstitutionName: h.Institution,
			},
		}
		if err := db.Create(user).Error; err != nil {
			logrus.Fatalf("Failed to create hospital %s: %v", h.Email, err)
		}
		hospitalUsers = append(hospitalUsers, user)
		logrus.Infof("Created hospital: %s (%s)", h.Institution, h.Email)
	}

	for _, d := range doctors {
		user := &entity.User{
			RoleID:   entity.RoleIDDoctor,
			Email:    d.Email,
			Password: mustHash("doctor123"),
			FullName: d.Name,
			DoctorProfile: &entity.DoctorProfile{
				Specialization: d.Specialization,
				Bio:            d.Bio,
			},
		}
		if err := db.Create(user).Error; err != nil {
			logrus.Fatalf("Failed to create doctor %s: %v", d.Email, err)
		}
		logrus.Infof("Created doctor: %s (%s)", d.Name, d.Email)
	}

	seedRequests(db, hospitalUsers)

	logrus.Info("Seed completed successfully")
	logrus.Info("Hospital login: admin@cityhospital.com / hospital123")
	logrus.Info("Doctor login: james.wilson@medexus.com / doctor123")
}

func seedRequests(db *gorm.DB, hospitals []*entity.User) {
	requests := []entity.SurgeryRequest{
		{
			HospitalID:             hospitals[0].ID,
			SurgeryType:            "Hip Replacement",
			RequiredSpecialization: "Orthopedic Surgeon",
			Urgency:                entity.UrgencyHigh,
			Date:                   "2025-03-20",
			Location:               "Springfield, IL",
			HospitalName:           "City General Hospital",
			ConditionDescription:   "Elderly patient with severe hip arthritis requiring urgent replacement",
		},
		{
			HospitalID:             hospitals[1].ID,
			SurgeryType:            "Cardiac Bypass",
			RequiredSpecialization: "Cardiologist",
			Urgency:                entity.UrgencyMedium,
			Date:                   "2025-03-25",
			Location:               "Madison, WI",
			HospitalName:           "Valley Medical Center",
			ConditionDescription:   "Patient with blocked arteries needs bypass surgery",
		},
		{
			HospitalID:             hospitals[2].ID,
			SurgeryType:            "Appendectomy",
			RequiredSpecialization: "General Surgeon",
			Urgency:                entity.UrgencyHigh,
			Date:                   "2025-03-15",
			Location:               "Cedar Falls, IA",
			HospitalName:           "Regional Health Hospital",
			ConditionDescription:   "Emergency appendectomy needed for acute appendicitis",
		},
	}

	for i := range requests {
		if err := db.Create(&requests[i]).Error; err != nil {
			logrus.Fatalf("Failed to create request %s: %v", requests[i].SurgeryType, err)
		}
		logrus.Infof("Created request: %s at %s", requests[i].SurgeryType, requests[i].HospitalName)
	}
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.Fatalf("Failed to hash password: %v", err)
	}
	return string(hash)
}
