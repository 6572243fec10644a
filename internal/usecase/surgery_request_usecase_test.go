package usecase

import (
	"context"
	"testing"

	"medexus-backend/internal/delivery/dto"
	"medexus-backend/internal/domain/entity"
	"medexus-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type SurgeryRequestUsecaseSuite struct {
	suite.Suite
	userRepo     *fakeUserRepo
	requestRepo  *fakeRequestRepo
	interestRepo *fakeInterestRepo
	auditRepo    *fakeAuditRepo
	usecase      SurgeryRequestUsecase

	hospital *entity.User
	doctor   *entity.User
}

func TestSurgeryRequestUsecaseSuite(t *testing.T) {
	suite.Run(t, new(SurgeryRequestUsecaseSuite))
}

func (s *SurgeryRequestUsecaseSuite) SetupTest() {
	s.userRepo = newFakeUserRepo()
	s.interestRepo = newFakeInterestRepo()
	s.requestRepo = newFakeRequestRepo(s.interestRepo)
	s.auditRepo = newFakeAuditRepo()

	log := testLogger()
	auditService := service.NewAuditService(log, s.auditRepo)
	s.usecase = NewSurgeryRequestUsecase(log, s.requestRepo, s.interestRepo, s.userRepo, auditService)

	s.hospital = s.createUser(entity.RoleIDHospital, "admin@cityhospital.com", "Dr. Sarah Johnson")
	s.doctor = s.createUser(entity.RoleIDDoctor, "james.wilson@medexus.com", "Dr. James Wilson")
}

func (s *SurgeryRequestUsecaseSuite) createUser(roleID int, email, name string) *entity.User {
	user := &entity.User{
		RoleID:   roleID,
		Email:    email,
		FullName: name,
	}
	switch roleID {
	case entity.RoleIDHospital:
		user.HospitalProfile = &entity.HospitalProfile{InstitutionName: "City General Hospital"}
	case entity.RoleIDDoctor:
		user.DoctorProfile = &entity.DoctorProfile{Specialization: "Orthopedic Surgeon", Bio: "Joint replacement"}
	}
	s.Require().NoError(s.userRepo.Create(context.Background(), user))
	if user.HospitalProfile != nil {
		user.HospitalProfile.UserID = user.ID
	}
	if user.DoctorProfile != nil {
		user.DoctorProfile.UserID = user.ID
	}
	return user
}

func (s *SurgeryRequestUsecaseSuite) newCreateRequest() *dto.CreateSurgeryRequestRequest {
	return &dto.CreateSurgeryRequestRequest{
		SurgeryType:            "Hip Replacement",
		RequiredSpecialization: "Orthopedic Surgeon",
		Urgency:                entity.UrgencyHigh,
		Date:                   "2025-03-20",
		Location:               "Springfield, IL",
		HospitalName:           "City General Hospital",
		ConditionDescription:   "Severe hip arthritis",
	}
}

func (s *SurgeryRequestUsecaseSuite) createRequest(hospitalID uuid.UUID) *dto.SurgeryRequestResponse {
	ctx := authContext(hospitalID, entity.RoleHospital)
	result, err := s.usecase.CreateRequest(ctx, s.newCreateRequest())
	s.Require().NoError(err)
	return result
}

func (s *SurgeryRequestUsecaseSuite) TestCreateAndGet() {
	s.Run("created request is owned by the caller and readable back", func() {
		created := s.createRequest(s.hospital.ID)
		s.Equal(s.hospital.ID, created.HospitalID)
		s.Equal("Hip Replacement", created.SurgeryType)

		ctx := authContext(s.hospital.ID, entity.RoleHospital)
		found, err := s.usecase.GetRequest(ctx, created.ID)
		s.Require().NoError(err)
		s.Equal(created.ID, found.ID)
		s.Equal(created.SurgeryType, found.SurgeryType)
	})

	s.Run("unknown request returns not found", func() {
		ctx := authContext(s.doctor.ID, entity.RoleDoctor)
		_, err := s.usecase.GetRequest(ctx, uuid.New())
		s.Require().ErrorIs(err, ErrRequestNotFound)
	})
}

func (s *SurgeryRequestUsecaseSuite) TestListForHospital() {
	other := s.createUser(entity.RoleIDHospital, "admin@valleymed.com", "Dr. Michael Chen")
	s.createRequest(s.hospital.ID)
	s.createRequest(other.ID)

	ctx := authContext(s.hospital.ID, entity.RoleHospital)
	result, err := s.usecase.ListRequests(ctx)
	s.Require().NoError(err)
	s.Equal(1, result.Total)
	s.Equal(s.hospital.ID, result.Requests[0].HospitalID)
}

func (s *SurgeryRequestUsecaseSuite) TestListForDoctor() {
	other := s.createUser(entity.RoleIDHospital, "admin@regionalhospital.com", "Dr. Emily Rodriguez")
	s.createRequest(s.hospital.ID)
	s.createRequest(other.ID)

	ctx := authContext(s.doctor.ID, entity.RoleDoctor)
	result, err := s.usecase.ListRequests(ctx)
	s.Require().NoError(err)
	s.Equal(2, result.Total)
}

func (s *SurgeryRequestUsecaseSuite) TestListCarriesLiveInstitutionName() {
	created := s.createRequest(s.hospital.ID)
	s.hospital.HospitalProfile.InstitutionName = "City General Hospital - North Campus"

	ctx := authContext(s.doctor.ID, entity.RoleDoctor)
	result, err := s.usecase.ListRequests(ctx)
	s.Require().NoError(err)
	s.Require().Equal(1, result.Total)
	s.Equal(created.ID, result.Requests[0].ID)
	s.Equal("City General Hospital - North Campus", result.Requests[0].HospitalName)
}

func (s *SurgeryRequestUsecaseSuite) TestInterestedDoctorsVisibility() {
	s.Run("owner sees interested doctors on its request", func() {
		created := s.createRequest(s.hospital.ID)
		s.Require().NoError(s.interestRepo.Create(context.Background(), &entity.Interest{
			RequestID: created.ID,
			DoctorID:  s.doctor.ID,
		}))

		ctx := authContext(s.hospital.ID, entity.RoleHospital)
		found, err := s.usecase.GetRequest(ctx, created.ID)
		s.Require().NoError(err)
		s.Require().Len(found.InterestedDoctors, 1)
		s.Equal("Dr. James Wilson", found.InterestedDoctors[0].Name)
		s.Equal("Orthopedic Surgeon", found.InterestedDoctors[0].Specialization)
	})

	s.Run("doctor does not see the interested doctors list", func() {
		created := s.createRequest(s.hospital.ID)
		s.Require().NoError(s.interestRepo.Create(context.Background(), &entity.Interest{
			RequestID: created.ID,
			DoctorID:  s.doctor.ID,
		}))

		ctx := authContext(s.doctor.ID, entity.RoleDoctor)
		found, err := s.usecase.GetRequest(ctx, created.ID)
		s.Require().NoError(err)
		s.Empty(found.InterestedDoctors)
	})
}

func (s *SurgeryRequestUsecaseSuite) TestUpdate() {
	s.Run("owner replaces the descriptive fields", func() {
		created := s.createRequest(s.hospital.ID)

		update := &dto.UpdateSurgeryRequestRequest{
			SurgeryType:            "Knee Replacement",
			RequiredSpecialization: "Orthopedic Surgeon",
			Urgency:                entity.UrgencyMedium,
			Date:                   "2025-04-01",
			Location:               "Springfield, IL",
			HospitalName:           "City General Hospital",
			ConditionDescription:   "",
		}
		ctx := authContext(s.hospital.ID, entity.RoleHospital)
		result, err := s.usecase.UpdateRequest(ctx, created.ID, update)
		s.Require().NoError(err)
		s.Equal("Knee Replacement", result.SurgeryType)
		s.Equal(entity.UrgencyMedium, result.Urgency)
		s.Empty(result.ConditionDescription)
	})

	s.Run("non-owner hospital is rejected", func() {
		created := s.createRequest(s.hospital.ID)
		other := s.createUser(entity.RoleIDHospital, "admin@othermed.com", "Dr. Other")

		ctx := authContext(other.ID, entity.RoleHospital)
		_, err := s.usecase.UpdateRequest(ctx, created.ID, &dto.UpdateSurgeryRequestRequest{
			SurgeryType:            "Hijacked",
			RequiredSpecialization: "X",
			Urgency:                entity.UrgencyLow,
			Date:                   "2025-01-01",
			Location:               "Nowhere",
			HospitalName:           "Other",
		})
		s.Require().ErrorIs(err, ErrRequestNotOwned)
	})

	s.Run("unknown request returns not found", func() {
		ctx := authContext(s.hospital.ID, entity.RoleHospital)
		_, err := s.usecase.UpdateRequest(ctx, uuid.New(), &dto.UpdateSurgeryRequestRequest{
			SurgeryType:            "X",
			RequiredSpecialization: "X",
			Urgency:                entity.UrgencyLow,
			Date:                   "2025-01-01",
			Location:               "X",
			HospitalName:           "X",
		})
		s.Require().ErrorIs(err, ErrRequestNotFound)
	})
}

func (s *SurgeryRequestUsecaseSuite) TestDelete() {
	s.Run("owner delete removes the request and its interests", func() {
		created := s.createRequest(s.hospital.ID)
		s.Require().NoError(s.interestRepo.Create(context.Background(), &entity.Interest{
			RequestID: created.ID,
			DoctorID:  s.doctor.ID,
		}))

		ctx := authContext(s.hospital.ID, entity.RoleHospital)
		s.Require().NoError(s.usecase.DeleteRequest(ctx, created.ID))

		_, err := s.usecase.GetRequest(ctx, created.ID)
		s.Require().ErrorIs(err, ErrRequestNotFound)

		orphans, err := s.interestRepo.FindByRequestID(context.Background(), created.ID)
		s.Require().NoError(err)
		s.Empty(orphans)
	})

	s.Run("non-owner hospital cannot delete", func() {
		created := s.createRequest(s.hospital.ID)
		other := s.createUser(entity.RoleIDHospital, "admin@thirdmed.com", "Dr. Third")

		ctx := authContext(other.ID, entity.RoleHospital)
		err := s.usecase.DeleteRequest(ctx, created.ID)
		s.Require().ErrorIs(err, ErrRequestNotOwned)
	})

	s.Run("unknown request returns not found", func() {
		ctx := authContext(s.hospital.ID, entity.RoleHospital)
		err := s.usecase.DeleteRequest(ctx, uuid.New())
		s.Require().ErrorIs(err, ErrRequestNotFound)
	})
}

func (s *SurgeryRequestUsecaseSuite) TestAuditTrail() {
	s.Run("create, update and delete are audited", func() {
		created := s.createRequest(s.hospital.ID)

		ctx := authContext(s.hospital.ID, entity.RoleHospital)
		_, err := s.usecase.UpdateRequest(ctx, created.ID, &dto.UpdateSurgeryRequestRequest{
			SurgeryType:            "Knee Replacement",
			RequiredSpecialization: "Orthopedic Surgeon",
			Urgency:                entity.UrgencyLow,
			Date:                   "2025-04-01",
			Location:               "Springfield, IL",
			HospitalName:           "City General Hospital",
		})
		s.Require().NoError(err)
		s.Require().NoError(s.usecase.DeleteRequest(ctx, created.ID))

		actions := s.auditRepo.actions()
		s.Contains(actions, entity.AuditActionRequestCreate)
		s.Contains(actions, entity.AuditActionRequestUpdate)
		s.Contains(actions, entity.AuditActionRequestDelete)
	})
}
