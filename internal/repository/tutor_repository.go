package repository

import (
	"studyshare_backend/internal/model"

	"gorm.io/gorm"
)

type TutorRepository struct {
	DB *gorm.DB
}

func NewTutorRepository(db *gorm.DB) *TutorRepository {
	return &TutorRepository{DB: db}
}

// FindAll returns tutors best-rated first. available narrows to the given
// availability flag when non-nil.
func (r *TutorRepository) FindAll(available *bool, limit int) ([]model.Tutor, error) {
	var tutors []model.Tutor
	query := r.DB.Model(&model.Tutor{})
	if available != nil {
		query = query.Where("is_available = ?", *available)
	}
	err := query.Order("rating DESC").
		Limit(limit).
		Preload("User").
		Find(&tutors).Error
	return tutors, err
}

func (r *TutorRepository) FindByID(id string) (*model.Tutor, error) {
	var tutor model.Tutor
	err := r.DB.Preload("User").First(&tutor, "id = ?", id).Error
	return &tutor, err
}

func (r *TutorRepository) FindByUserID(userID string) (*model.Tutor, error) {
	var tutor model.Tutor
	err := r.DB.Preload("User").Where("user_id = ?", userID).First(&tutor).Error
	return &tutor, err
}

func (r *TutorRepository) Create(tutor *model.Tutor) error {
	return r.DB.Create(tutor).Error
}

func (r *TutorRepository) Save(tutor *model.Tutor) error {
	return r.DB.Save(tutor).Error
}

func (r *TutorRepository) Delete(id string) error {
	return r.DB.Delete(&model.Tutor{}, "id = ?", id).Error
}
