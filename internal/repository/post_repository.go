package repository

import (
	"studyshare_backend/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{DB: db}
}

// FindAll returns active posts, pinned first, then newest first.
func (r *PostRepository) FindAll(postType, categoryID string, limit int) ([]model.Post, error) {
	var posts []model.Post
	query := r.DB.Where("is_active = ?", true)
	if postType != "" {
		query = query.Where("post_type = ?", postType)
	}
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	err := query.Order("is_pinned DESC").
		Order("created_at DESC").
		Limit(limit).
		Preload("Author").
		Preload("Category").
		Find(&posts).Error
	return posts, err
}

func (r *PostRepository) FindByID(id string) (*model.Post, error) {
	var post model.Post
	err := r.DB.Preload("Author").Preload("Category").
		First(&post, "id = ?", id).Error
	return &post, err
}

func (r *PostRepository) FindByAuthor(authorID string, limit int) ([]model.Post, error) {
	var posts []model.Post
	err := r.DB.Where("author_id = ?", authorID).
		Order("created_at DESC").
		Limit(limit).
		Preload("Author").
		Preload("Category").
		Find(&posts).Error
	return posts, err
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) Save(post *model.Post) error {
	return r.DB.Save(post).Error
}

func (r *PostRepository) Delete(id string) error {
	return r.DB.Delete(&model.Post{}, "id = ?", id).Error
}
