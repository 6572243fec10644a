package usecase

import (
	"context"
	"errors"

	"medexus-backend/internal/converter"
	"medexus-backend/internal/delivery/dto"
	"medexus-backend/internal/delivery/http/middleware"
	"medexus-backend/internal/domain/entity"
	"medexus-backend/internal/domain/repository"
	"medexus-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrRequestNotFound = errors.New("request not found")
	ErrRequestNotOwned = errors.New("request does not belong to you")
)

type SurgeryRequestUsecase interface {
	CreateRequest(ctx context.Context, req *dto.CreateSurgeryRequestRequest) (*dto.SurgeryRequestResponse, error)
	ListRequests(ctx context.Context) (*dto.SurgeryRequestListResponse, error)
	GetRequest(ctx context.Context, requestID uuid.UUID) (*dto.SurgeryRequestResponse, error)
	UpdateRequest(ctx context.Context, requestID uuid.UUID, req *dto.UpdateSurgeryRequestRequest) (*dto.SurgeryRequestResponse, error)
	DeleteRequest(ctx context.Context, requestID uuid.UUID) error
}

type surgeryRequestUsecase struct {
	log          *logrus.Logger
	requestRepo  repository.SurgeryRequestRepository
	interestRepo repository.InterestRepository
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewSurgeryRequestUsecase(
	log *logrus.Logger,
	requestRepo repository.SurgeryRequestRepository,
	interestRepo repository.InterestRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) SurgeryRequestUsecase {
	return &surgeryRequestUsecase{
		log:          log,
		requestRepo:  requestRepo,
		interestRepo: interestRepo,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

// CreateRequest creates a request owned by the authenticated hospital.
// The hospital role is enforced by the route middleware.
func (u *surgeryRequestUsecase) CreateRequest(ctx context.Context, req *dto.CreateSurgeryRequestRequest) (*dto.SurgeryRequestResponse, error) {
	hospitalID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	request := &entity.SurgeryRequest{
		HospitalID:             hospitalID,
		SurgeryType:            req.SurgeryType,
		RequiredSpecialization: req.RequiredSpecialization,
		Urgency:                req.Urgency,
		Date:                   req.Date,
		Location:               req.Location,
		HospitalName:           req.HospitalName,
		ConditionDescription:   req.ConditionDescription,
	}

	if err := u.requestRepo.Create(ctx, request); err != nil {
		u.log.Warnf("Failed to create surgery request: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, &hospitalID, entity.AuditActionRequestCreate, "surgery_request", request.ID.String(), converter.RequestToResponse(request)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Surgery request created: id=%s, hospital=%s", request.ID, hospitalID)
	return converter.RequestToResponse(request), nil
}

// ListRequests shapes its result by the actor's role: hospitals see their own
// requests with the interested doctors attached, doctors see every request
// with the owning hospital's live institution name.
func (u *surgeryRequestUsecase) ListRequests(ctx context.Context) (*dto.SurgeryRequestListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	role, ok := middleware.GetRoleFromContext(ctx)
	if !ok {
		return nil, errors.New("role not found in context")
	}

	if role == entity.RoleHospital {
		return u.listForHospital(ctx, userID)
	}
	return u.listForDoctor(ctx)
}

func (u *surgeryRequestUsecase) listForHospital(ctx context.Context, hospitalID uuid.UUID) (*dto.SurgeryRequestListResponse, error) {
	requests, err := u.requestRepo.FindByHospitalID(ctx, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find requests for hospital %s: %+v", hospitalID, err)
		return nil, err
	}

	responses := make([]dto.SurgeryRequestResponse, 0, len(requests))
	for i := range requests {
		doctors, err := u.resolveInterestedDoctors(ctx, requests[i].ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *converter.RequestToOwnerResponse(&requests[i], doctors))
	}

	return &dto.SurgeryRequestListResponse{
		Requests: responses,
		Total:    len(responses),
	}, nil
}

func (u *surgeryRequestUsecase) listForDoctor(ctx context.Context) (*dto.SurgeryRequestListResponse, error) {
	requests, err := u.requestRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list surgery requests: %+v", err)
		return nil, err
	}

	responses := make([]dto.SurgeryRequestResponse, 0, len(requests))
	for i := range requests {
		hospital, err := u.userRepo.FindByID(ctx, requests[i].HospitalID)
		if err != nil {
			u.log.Warnf("Failed to find hospital %s: %+v", requests[i].HospitalID, err)
			return nil, err
		}
		responses = append(responses, *converter.RequestToBrowseResponse(&requests[i], hospital))
	}

	return &dto.SurgeryRequestListResponse{
		Requests: responses,
		Total:    len(responses),
	}, nil
}

// GetRequest returns the detail view: the owning hospital gets the interested
// doctors attached, every other actor gets the bare request.
func (u *surgeryRequestUsecase) GetRequest(ctx context.Context, requestID uuid.UUID) (*dto.SurgeryRequestResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	role, _ := middleware.GetRoleFromContext(ctx)

	request, err := u.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		u.log.Warnf("Failed to find request %s: %+v", requestID, err)
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}

	if role == entity.RoleHospital && request.IsOwnedBy(userID) {
		doctors, err := u.resolveInterestedDoctors(ctx, request.ID)
		if err != nil {
			return nil, err
		}
		return converter.RequestToOwnerResponse(request, doctors), nil
	}

	return converter.RequestToResponse(request), nil
}

// UpdateRequest fully replaces the descriptive fields. Only the owner may
// update; anyone else gets ErrRequestNotOwned.
func (u *surgeryRequestUsecase) UpdateRequest(ctx context.Context, requestID uuid.UUID, req *dto.UpdateSurgeryRequestRequest) (*dto.SurgeryRequestResponse, error) {
	hospitalID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	request, err := u.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		u.log.Warnf("Failed to find request %s: %+v", requestID, err)
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}

	if !request.IsOwnedBy(hospitalID) {
		return nil, ErrRequestNotOwned
	}

	oldValue := converter.RequestToResponse(request)

	request.SurgeryType = req.SurgeryType
	request.RequiredSpecialization = req.RequiredSpecialization
	request.Urgency = req.Urgency
	request.Date = req.Date
	request.Location = req.Location
	request.HospitalName = req.HospitalName
	request.ConditionDescription = req.ConditionDescription

	if err := u.requestRepo.Update(ctx, request); err != nil {
		u.log.Warnf("Failed to update request %s: %+v", requestID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, &hospitalID, entity.AuditActionRequestUpdate, "surgery_request", request.ID.String(), oldValue, converter.RequestToResponse(request)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.RequestToResponse(request), nil
}

// DeleteRequest removes the request together with all interests referencing
// it. Only the owner may delete.
func (u *surgeryRequestUsecase) DeleteRequest(ctx context.Context, requestID uuid.UUID) error {
	hospitalID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	request, err := u.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		u.log.Warnf("Failed to find request %s: %+v", requestID, err)
		return err
	}
	if request == nil {
		return ErrRequestNotFound
	}

	if !request.IsOwnedBy(hospitalID) {
		return ErrRequestNotOwned
	}

	if err := u.requestRepo.Delete(ctx, requestID); err != nil {
		u.log.Warnf("Failed to delete request %s: %+v", requestID, err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, &hospitalID, entity.AuditActionRequestDelete, "surgery_request", requestID.String(), converter.RequestToResponse(request)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Surgery request deleted: id=%s, hospital=%s", requestID, hospitalID)
	return nil
}

// resolveInterestedDoctors loads the doctors behind every interest on a
// request. Doctors that no longer resolve are skipped.
func (u *surgeryRequestUsecase) resolveInterestedDoctors(ctx context.Context, requestID uuid.UUID) ([]*entity.User, error) {
	interests, err := u.interestRepo.FindByRequestID(ctx, requestID)
	if err != nil {
		u.log.Warnf("Failed to find interests for request %s: %+v", requestID, err)
		return nil, err
	}

	doctors := make([]*entity.User, 0, len(interests))
	for _, interest := range interests {
		doctor, err := u.userRepo.FindByID(ctx, interest.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor %s: %+v", interest.DoctorID, err)
			return nil, err
		}
		if doctor == nil {
			continue
		}
		doctors = append(doctors, doctor)
	}
	return doctors, nil
}
