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
	ErrAlreadyInterested = errors.New("already expressed interest in this request")
	ErrInterestNotFound  = errors.New("interest not found")
)

type InterestUsecase interface {
	ExpressInterest(ctx context.Context, req *dto.ExpressInterestRequest) (*dto.InterestResponse, error)
	WithdrawInterest(ctx context.Context, requestID uuid.UUID) error
	GetMyInterests(ctx context.Context) (*dto.MyInterestListResponse, error)
}

type interestUsecase struct {
	log          *logrus.Logger
	interestRepo repository.InterestRepository
	requestRepo  repository.SurgeryRequestRepository
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewInterestUsecase(
	log *logrus.Logger,
	interestRepo repository.InterestRepository,
	requestRepo repository.SurgeryRequestRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) InterestUsecase {
	return &interestUsecase{
		log:          log,
		interestRepo: interestRepo,
		requestRepo:  requestRepo,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

// ExpressInterest records the authenticated doctor's interest in a request.
// The pre-check gives a clean conflict error; a racing duplicate that slips
// past it is caught by the unique index on (request_id, doctor_id).
func (u *interestUsecase) ExpressInterest(ctx context.Context, req *dto.ExpressInterestRequest) (*dto.InterestResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	request, err := u.requestRepo.FindByID(ctx, req.RequestID)
	if err != nil {
		u.log.Warnf("Failed to find request %s: %+v", req.RequestID, err)
		return nil, err
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}

	existing, err := u.interestRepo.FindByRequestAndDoctor(ctx, req.RequestID, doctorID)
	if err != nil {
		u.log.Warnf("Failed to check existing interest: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyInterested
	}

	interest := &entity.Interest{
		RequestID: req.RequestID,
		DoctorID:  doctorID,
	}

	if err := u.interestRepo.Create(ctx, interest); err != nil {
		if isDuplicateKeyError(err, "idx_interests_request_doctor") {
			return nil, ErrAlreadyInterested
		}
		u.log.Warnf("Failed to create interest: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, &doctorID, entity.AuditActionInterestExpress, "interest", interest.ID.String(), converter.InterestToResponse(interest)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Interest expressed: request=%s, doctor=%s", req.RequestID, doctorID)
	return converter.InterestToResponse(interest), nil
}

// WithdrawInterest deletes the doctor's interest in a request. The doctor can
// only ever touch their own interests since the pair is keyed on the actor.
func (u *interestUsecase) WithdrawInterest(ctx context.Context, requestID uuid.UUID) error {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	deleted, err := u.interestRepo.DeleteByRequestAndDoctor(ctx, requestID, doctorID)
	if err != nil {
		u.log.Warnf("Failed to withdraw interest: %+v", err)
		return err
	}
	if deleted == 0 {
		return ErrInterestNotFound
	}

	if err := u.auditService.LogDelete(ctx, &doctorID, entity.AuditActionInterestWithdraw, "interest", requestID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Interest withdrawn: request=%s, doctor=%s", requestID, doctorID)
	return nil
}

// GetMyInterests joins each interest with its request and the owning
// hospital's live institution name. Interests whose request was deleted in
// the meantime are dropped.
func (u *interestUsecase) GetMyInterests(ctx context.Context) (*dto.MyInterestListResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	interests, err := u.interestRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find interests for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	items := make([]dto.MyInterestResponse, 0, len(interests))
	for i := range interests {
		request, err := u.requestRepo.FindByID(ctx, interests[i].RequestID)
		if err != nil {
			u.log.Warnf("Failed to find request %s: %+v", interests[i].RequestID, err)
			return nil, err
		}
		if request == nil {
			continue
		}

		hospital, err := u.userRepo.FindByID(ctx, request.HospitalID)
		if err != nil {
			u.log.Warnf("Failed to find hospital %s: %+v", request.HospitalID, err)
			return nil, err
		}

		items = append(items, *converter.InterestToMyInterestResponse(&interests[i], request, hospital))
	}

	return &dto.MyInterestListResponse{
		Interests: items,
		Total:     len(items),
	}, nil
}
