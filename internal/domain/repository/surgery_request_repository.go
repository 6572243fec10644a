package repository

import (
	"context"

	"medexus-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type SurgeryRequestRepository interface {
	Create(ctx context.Context, request *entity.SurgeryRequest) error
	// FindByID returns (nil, nil) when the request does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SurgeryRequest, error)
	FindByHospitalID(ctx context.Context, hospitalID uuid.UUID) ([]entity.SurgeryRequest, error)
	FindAll(ctx context.Context) ([]entity.SurgeryRequest, error)
	Update(ctx context.Context, request *entity.SurgeryRequest) error
	// Delete removes the request and every interest referencing it as one
	// atomic unit, so no interest outlives its request.
	Delete(ctx context.Context, id uuid.UUID) error
}
