package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studyshare_backend/internal/model"
	"studyshare_backend/internal/repository"
	"studyshare_backend/internal/util"

	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// viewDedupTTL is how long a repeat visit by the same user/IP is ignored
// for view counting.
const viewDedupTTL = 10 * time.Minute

type ResourceService struct {
	ResourceRepo *repository.ResourceRepository
	CategoryRepo *repository.CategoryRepository
	Redis        *redis.Client
}

func NewResourceService(
	resourceRepo *repository.ResourceRepository,
	categoryRepo *repository.CategoryRepository,
	rdb *redis.Client,
) *ResourceService {
	return &ResourceService{
		ResourceRepo: resourceRepo,
		CategoryRepo: categoryRepo,
		Redis:        rdb,
	}
}

// ResourceView decorates a resource with related display names without
// denormalizing storage.
type ResourceView struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description,omitempty"`
	CategoryID    string         `json:"category_id"`
	CategoryName  string         `json:"category_name,omitempty"`
	FileURL       string         `json:"file_url,omitempty"`
	FileType      model.FileType `json:"file_type,omitempty"`
	Tags          []string       `json:"tags"`
	AuthorID      string         `json:"author_id"`
	AuthorName    string         `json:"author_name,omitempty"`
	DownloadCount int            `json:"download_count"`
	ViewCount     int            `json:"view_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func toResourceView(r *model.Resource) ResourceView {
	tags := []string(r.Tags)
	if tags == nil {
		tags = []string{}
	}
	return ResourceView{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		CategoryID:    r.CategoryID,
		CategoryName:  r.Category.Name,
		FileURL:       r.FileURL,
		FileType:      r.FileType,
		Tags:          tags,
		AuthorID:      r.AuthorID,
		AuthorName:    r.Author.Name,
		DownloadCount: r.DownloadCount,
		ViewCount:     r.ViewCount,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func toResourceViews(resources []model.Resource) []ResourceView {
	views := make([]ResourceView, len(resources))
	for i := range resources {
		views[i] = toResourceView(&resources[i])
	}
	return views
}

func (s *ResourceService) List(limit int) ([]ResourceView, error) {
	resources, err := s.ResourceRepo.Find(repository.ResourceFilter{
		Limit: clampLimit(limit, util.DefaultListLimit),
	})
	if err != nil {
		return nil, err
	}
	return toResourceViews(resources), nil
}

func (s *ResourceService) Search(q, categoryID, fileType string, limit int) ([]ResourceView, error) {
	resources, err := s.ResourceRepo.Find(repository.ResourceFilter{
		Query:      q,
		CategoryID: categoryID,
		FileType:   fileType,
		Limit:      clampLimit(limit, util.DefaultSearchLimit),
	})
	if err != nil {
		return nil, err
	}
	return toResourceViews(resources), nil
}

func (s *ResourceService) ListByCategory(categoryID string, limit int) ([]ResourceView, error) {
	resources, err := s.ResourceRepo.Find(repository.ResourceFilter{
		CategoryID: categoryID,
		Limit:      clampLimit(limit, util.DefaultSearchLimit),
	})
	if err != nil {
		return nil, err
	}
	return toResourceViews(resources), nil
}

// Get fetches a resource and bumps its view counter, deduplicating repeat
// visits from the same user/IP via Redis SetNX.
func (s *ResourceService) Get(ctx context.Context, id, viewerID, ip string) (*ResourceView, error) {
	resource, err := s.ResourceRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	isNewVisit := true
	if s.Redis != nil {
		var key string
		if viewerID != "" {
			key = fmt.Sprintf("resource_v:%s:u:%s", id, viewerID)
		} else {
			key = fmt.Sprintf("resource_v:%s:ip:%s", id, ip)
		}
		isNewVisit, _ = s.Redis.SetNX(ctx, key, "1", viewDedupTTL).Result()
	}

	if isNewVisit {
		// Best-effort bump; a failed increment never fails the read.
		if err := s.ResourceRepo.IncrementViewCount(id); err == nil {
			resource.ViewCount++
		}
	}

	view := toResourceView(resource)
	return &view, nil
}

// ResourceCreate carries validated input for a new resource.
type ResourceCreate struct {
	Title       string
	Description string
	CategoryID  string
	FileURL     string
	FileType    model.FileType
	Tags        []string
}

func (s *ResourceService) Create(in ResourceCreate, authorID string) (*ResourceView, error) {
	if _, err := s.CategoryRepo.FindByID(in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidCategory
		}
		return nil, err
	}

	resource := &model.Resource{
		Title:       in.Title,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		FileURL:     in.FileURL,
		FileType:    in.FileType,
		Tags:        datatypes.NewJSONSlice(util.SanitizeTags(in.Tags)),
		AuthorID:    authorID,
	}
	if err := s.ResourceRepo.Create(resource); err != nil {
		return nil, err
	}

	created, err := s.ResourceRepo.FindByID(resource.ID)
	if err != nil {
		return nil, err
	}
	view := toResourceView(created)
	return &view, nil
}

// ResourceUpdate is a partial merge; nil fields stay untouched.
type ResourceUpdate struct {
	Title       *string
	Description *string
	FileURL     *string
	Tags        []string
}

func (s *ResourceService) Update(id string, patch ResourceUpdate, claims *util.Claims) (*ResourceView, error) {
	resource, err := s.ResourceRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := util.RequireOwner(claims, resource.AuthorID); err != nil {
		return nil, err
	}

	if patch.Title == nil && patch.Description == nil && patch.FileURL == nil && patch.Tags == nil {
		return nil, util.ErrNoFieldsToUpdate
	}
	if patch.Title != nil {
		resource.Title = *patch.Title
	}
	if patch.Description != nil {
		resource.Description = *patch.Description
	}
	if patch.FileURL != nil {
		resource.FileURL = *patch.FileURL
	}
	if patch.Tags != nil {
		resource.Tags = datatypes.NewJSONSlice(util.SanitizeTags(patch.Tags))
	}

	if err := s.ResourceRepo.Save(resource); err != nil {
		return nil, err
	}
	view := toResourceView(resource)
	return &view, nil
}

func (s *ResourceService) Delete(id string, claims *util.Claims) error {
	resource, err := s.ResourceRepo.FindByID(id)
	if err != nil {
		return err
	}

	if err := util.RequireOwner(claims, resource.AuthorID); err != nil {
		return err
	}

	return s.ResourceRepo.Delete(id)
}

func (s *ResourceService) TrackDownload(id string) error {
	if _, err := s.ResourceRepo.FindByID(id); err != nil {
		return err
	}
	return s.ResourceRepo.IncrementDownloadCount(id)
}
