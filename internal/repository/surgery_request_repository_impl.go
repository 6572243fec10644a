package repository

import (
	"context"
	"errors"

	"medexus-backend/internal/domain/entity"
	domainRepo "medexus-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type surgeryRequestRepository struct {
	db *gorm.DB
}

func NewSurgeryRequestRepository(db *gorm.DB) domainRepo.SurgeryRequestRepository {
	return &surgeryRequestRepository{db: db}
}

func (r *surgeryRequestRepository) Create(ctx context.Context, request *entity.SurgeryRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *surgeryRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SurgeryRequest, error) {
	var request entity.SurgeryRequest
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *surgeryRequestRepository) FindByHospitalID(ctx context.Context, hospitalID uuid.UUID) ([]entity.SurgeryRequest, error) {
	var requests []entity.SurgeryRequest
	err := r.db.WithContext(ctx).
		Where("hospital_id = ?", hospitalID).
		Order("created_at").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *surgeryRequestRepository) FindAll(ctx context.Context) ([]entity.SurgeryRequest, error) {
	var requests []entity.SurgeryRequest
	err := r.db.WithContext(ctx).Order("created_at").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *surgeryRequestRepository) Update(ctx context.Context, request *entity.SurgeryRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

// Delete cascades the interests inside one transaction. Interests go first so
// a failure can never leave an interest pointing at a deleted request.
func (r *surgeryRequestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("request_id = ?", id).Delete(&entity.Interest{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.SurgeryRequest{}).Error
	})
}
