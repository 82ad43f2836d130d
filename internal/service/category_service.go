package service

import (
	"errors"

	"studyshare_backend/internal/model"
	"studyshare_backend/internal/repository"
	"studyshare_backend/internal/util"

	"gorm.io/gorm"
)

type CategoryService struct {
	CategoryRepo *repository.CategoryRepository
}

func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{CategoryRepo: categoryRepo}
}

func (s *CategoryService) List() ([]model.Category, error) {
	return s.CategoryRepo.FindAll()
}

func (s *CategoryService) ListWithCounts() ([]repository.CategoryWithCount, error) {
	return s.CategoryRepo.FindAllWithCounts()
}

func (s *CategoryService) Get(id string) (*model.Category, error) {
	return s.CategoryRepo.FindByID(id)
}

func (s *CategoryService) Create(name, description, icon string) (*model.Category, error) {
	_, err := s.CategoryRepo.FindByName(name)
	if err == nil {
		return nil, util.ErrCategoryExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &model.Category{
		Name:        name,
		Description: description,
		Icon:        icon,
	}
	if err := s.CategoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes the category and cascades to its resources.
func (s *CategoryService) Delete(id string) error {
	if _, err := s.CategoryRepo.FindByID(id); err != nil {
		return err
	}
	return s.CategoryRepo.Delete(id)
}
