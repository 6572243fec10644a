package repository

import (
	"context"
	"errors"

	"medexus-backend/internal/domain/entity"
	domainRepo "medexus-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type interestRepository struct {
	db *gorm.DB
}

func NewInterestRepository(db *gorm.DB) domainRepo.InterestRepository {
	return &interestRepository{db: db}
}

func (r *interestRepository) Create(ctx context.Context, interest *entity.Interest) error {
	return r.db.WithContext(ctx).Create(interest).Error
}

func (r *interestRepository) FindByRequestAndDoctor(ctx context.Context, requestID, doctorID uuid.UUID) (*entity.Interest, error) {
	var interest entity.Interest
	err := r.db.WithContext(ctx).
		Where("request_id = ? AND doctor_id = ?", requestID, doctorID).
		First(&interest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &interest, nil
}

func (r *interestRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Interest, error) {
	var interests []entity.Interest
	err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("created_at").
		Find(&interests).Error
	if err != nil {
		return nil, err
	}
	return interests, nil
}

func (r *interestRepository) FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]entity.Interest, error) {
	var interests []entity.Interest
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("created_at").
		Find(&interests).Error
	if err != nil {
		return nil, err
	}
	return interests, nil
}

func (r *interestRepository) DeleteByRequestAndDoctor(ctx context.Context, requestID, doctorID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("request_id = ? AND doctor_id = ?", requestID, doctorID).
		Delete(&entity.Interest{})
	return result.RowsAffected, result.Error
}
