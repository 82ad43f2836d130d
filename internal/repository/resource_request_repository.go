package repository

import (
	"studyshare_backend/internal/model"

	"gorm.io/gorm"
)

type ResourceRequestRepository struct {
	DB *gorm.DB
}

func NewResourceRequestRepository(db *gorm.DB) *ResourceRequestRepository {
	return &ResourceRequestRepository{DB: db}
}

func (r *ResourceRequestRepository) FindAll(status string, limit int) ([]model.ResourceRequest, error) {
	var requests []model.ResourceRequest
	query := r.DB.Model(&model.ResourceRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").
		Limit(limit).
		Preload("Requester").
		Preload("Category").
		Find(&requests).Error
	return requests, err
}

func (r *ResourceRequestRepository) FindByID(id string) (*model.ResourceRequest, error) {
	var request model.ResourceRequest
	err := r.DB.Preload("Requester").Preload("Category").
		First(&request, "id = ?", id).Error
	return &request, err
}

func (r *ResourceRequestRepository) FindByUser(userID string, limit int) ([]model.ResourceRequest, error) {
	var requests []model.ResourceRequest
	err := r.DB.Where("requested_by = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Preload("Requester").
		Preload("Category").
		Find(&requests).Error
	return requests, err
}

func (r *ResourceRequestRepository) Create(request *model.ResourceRequest) error {
	return r.DB.Create(request).Error
}

func (r *ResourceRequestRepository) Save(request *model.ResourceRequest) error {
	return r.DB.Save(request).Error
}

func (r *ResourceRequestRepository) Delete(id string) error {
	return r.DB.Delete(&model.ResourceRequest{}, "id = ?", id).Error
}
