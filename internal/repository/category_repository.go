package repository

import (
	"studyshare_backend/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

// CategoryWithCount decorates a category with its live resource count.
type CategoryWithCount struct {
	model.Category
	ResourceCount int64 `json:"resource_count"`
}

func (r *CategoryRepository) FindAll() ([]model.Category, error) {
	var categories []model.Category
	err := r.DB.Order("name").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) FindByID(id string) (*model.Category, error) {
	var category model.Category
	err := r.DB.First(&category, "id = ?", id).Error
	return &category, err
}

func (r *CategoryRepository) FindByName(name string) (*model.Category, error) {
	var category model.Category
	err := r.DB.Where("name = ?", name).First(&category).Error
	return &category, err
}

func (r *CategoryRepository) FindAllWithCounts() ([]CategoryWithCount, error) {
	categories, err := r.FindAll()
	if err != nil {
		return nil, err
	}

	out := make([]CategoryWithCount, len(categories))
	for i, c := range categories {
		var count int64
		if err := r.DB.Model(&model.Resource{}).
			Where("category_id = ?", c.ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		out[i] = CategoryWithCount{Category: c, ResourceCount: count}
	}
	return out, nil
}

func (r *CategoryRepository) Create(category *model.Category) error {
	return r.DB.Create(category).Error
}

// Delete removes the category and every resource referencing it, mirroring
// the ON DELETE CASCADE policy of the schema.
func (r *CategoryRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&model.Resource{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Category{}, "id = ?", id).Error
	})
}
