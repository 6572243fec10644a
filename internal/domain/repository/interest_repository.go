package repository

import (
	"context"

	"medexus-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type InterestRepository interface {
	Create(ctx context.Context, interest *entity.Interest) error
	// FindByRequestAndDoctor returns (nil, nil) when no matching record exists.
	FindByRequestAndDoctor(ctx context.Context, requestID, doctorID uuid.UUID) (*entity.Interest, error)
	FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Interest, error)
	FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]entity.Interest, error)
	// DeleteByRequestAndDoctor returns the number of deleted rows: 0 means
	// there was no interest to withdraw.
	DeleteByRequestAndDoctor(ctx context.Context, requestID, doctorID uuid.UUID) (int64, error)
}
