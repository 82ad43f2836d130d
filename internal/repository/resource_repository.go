package repository

import (
	"strings"

	"studyshare_backend/internal/model"

	"gorm.io/gorm"
)

type ResourceRepository struct {
	DB *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{DB: db}
}

// ResourceFilter narrows list/search queries. Zero values mean "no filter".
type ResourceFilter struct {
	Query      string
	CategoryID string
	FileType   string
	Limit      int
}

func (r *ResourceRepository) Find(filter ResourceFilter) ([]model.Resource, error) {
	var resources []model.Resource

	query := r.DB.Model(&model.Resource{})

	if filter.Query != "" {
		needle := "%" + strings.ToLower(filter.Query) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", needle, needle)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.FileType != "" {
		query = query.Where("file_type = ?", filter.FileType)
	}

	err := query.Order("created_at DESC").
		Limit(filter.Limit).
		Preload("Category").
		Preload("Author").
		Find(&resources).Error
	return resources, err
}

func (r *ResourceRepository) FindByID(id string) (*model.Resource, error) {
	var resource model.Resource
	err := r.DB.Preload("Category").Preload("Author").
		First(&resource, "id = ?", id).Error
	return &resource, err
}

func (r *ResourceRepository) Create(resource *model.Resource) error {
	return r.DB.Create(resource).Error
}

func (r *ResourceRepository) Save(resource *model.Resource) error {
	return r.DB.Save(resource).Error
}

func (r *ResourceRepository) Delete(id string) error {
	return r.DB.Delete(&model.Resource{}, "id = ?", id).Error
}

// Counter bumps are single-statement best-effort updates; concurrent bumps
// may race and that is acceptable for these counters.
func (r *ResourceRepository) IncrementViewCount(id string) error {
	return r.DB.Model(&model.Resource{}).
		Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + 1")).
		Error
}

func (r *ResourceRepository) IncrementDownloadCount(id string) error {
	return r.DB.Model(&model.Resource{}).
		Where("id = ?", id).
		Update("download_count", gorm.Expr("download_count + 1")).
		Error
}
