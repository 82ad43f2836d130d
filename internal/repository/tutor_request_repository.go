package repository

import (
	"studyshare_backend/internal/model"

	"gorm.io/gorm"
)

type TutorRequestRepository struct {
	DB *gorm.DB
}

func NewTutorRequestRepository(db *gorm.DB) *TutorRequestRepository {
	return &TutorRequestRepository{DB: db}
}

func (r *TutorRequestRepository) FindAll(status string, limit int) ([]model.TutorRequest, error) {
	var requests []model.TutorRequest
	query := r.DB.Model(&model.TutorRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").
		Limit(limit).
		Preload("Student").
		Find(&requests).Error
	return requests, err
}

func (r *TutorRequestRepository) FindByID(id string) (*model.TutorRequest, error) {
	var request model.TutorRequest
	err := r.DB.Preload("Student").First(&request, "id = ?", id).Error
	return &request, err
}

func (r *TutorRequestRepository) Create(request *model.TutorRequest) error {
	return r.DB.Create(request).Error
}

func (r *TutorRequestRepository) Save(request *model.TutorRequest) error {
	return r.DB.Save(request).Error
}
