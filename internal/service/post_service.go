package service

import (
	"errors"
	"time"

	"studyshare_backend/internal/model"
	"studyshare_backend/internal/repository"
	"studyshare_backend/internal/util"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PostService struct {
	PostRepo     *repository.PostRepository
	CategoryRepo *repository.CategoryRepository
}

func NewPostService(
	postRepo *repository.PostRepository,
	categoryRepo *repository.CategoryRepository,
) *PostService {
	return &PostService{
		PostRepo:     postRepo,
		CategoryRepo: categoryRepo,
	}
}

type PostView struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	PostType       model.PostType `json:"post_type"`
	CategoryID     *string        `json:"category_id,omitempty"`
	CategoryName   string         `json:"category_name,omitempty"`
	AuthorID       string         `json:"author_id"`
	AuthorName     string         `json:"author_name,omitempty"`
	AttachmentURLs []string       `json:"attachment_urls"`
	IsPinned       bool           `json:"is_pinned"`
	IsActive       bool           `json:"is_active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func toPostView(p *model.Post) PostView {
	attachments := []string(p.AttachmentURLs)
	if attachments == nil {
		attachments = []string{}
	}
	view := PostView{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		PostType:       p.PostType,
		CategoryID:     p.CategoryID,
		AuthorID:       p.AuthorID,
		AuthorName:     p.Author.Name,
		AttachmentURLs: attachments,
		IsPinned:       p.IsPinned,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.Category != nil {
		view.CategoryName = p.Category.Name
	}
	return view
}

func toPostViews(posts []model.Post) []PostView {
	views := make([]PostView, len(posts))
	for i := range posts {
		views[i] = toPostView(&posts[i])
	}
	return views
}

func (s *PostService) List(postType, categoryID string, limit int) ([]PostView, error) {
	posts, err := s.PostRepo.FindAll(postType, categoryID, clampLimit(limit, util.DefaultListLimit))
	if err != nil {
		return nil, err
	}
	return toPostViews(posts), nil
}

func (s *PostService) Get(id string) (*PostView, error) {
	post, err := s.PostRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	view := toPostView(post)
	return &view, nil
}

func (s *PostService) ListByAuthor(authorID string, limit int) ([]PostView, error) {
	posts, err := s.PostRepo.FindByAuthor(authorID, clampLimit(limit, util.DefaultSearchLimit))
	if err != nil {
		return nil, err
	}
	return toPostViews(posts), nil
}

type PostCreate struct {
	Title          string
	Description    string
	PostType       model.PostType
	CategoryID     *string
	AttachmentURLs []string
}

func (s *PostService) Create(in PostCreate, authorID string) (*PostView, error) {
	if in.CategoryID != nil && *in.CategoryID != "" {
		if _, err := s.CategoryRepo.FindByID(*in.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrInvalidCategory
			}
			return nil, err
		}
	} else {
		in.CategoryID = nil
	}

	attachments := in.AttachmentURLs
	if attachments == nil {
		attachments = []string{}
	}

	post := &model.Post{
		Title:          in.Title,
		Description:    in.Description,
		PostType:       in.PostType,
		CategoryID:     in.CategoryID,
		AuthorID:       authorID,
		AttachmentURLs: datatypes.NewJSONSlice(attachments),
		IsActive:       true,
	}
	if err := s.PostRepo.Create(post); err != nil {
		return nil, err
	}

	created, err := s.PostRepo.FindByID(post.ID)
	if err != nil {
		return nil, err
	}
	view := toPostView(created)
	return &view, nil
}

type PostUpdate struct {
	Title          *string
	Description    *string
	AttachmentURLs []string
	IsActive       *bool
}

func (p PostUpdate) empty() bool {
	return p.Title == nil && p.Description == nil && p.AttachmentURLs == nil && p.IsActive == nil
}

func (s *PostService) Update(id string, patch PostUpdate, claims *util.Claims) (*PostView, error) {
	post, err := s.PostRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := util.RequireOwner(claims, post.AuthorID); err != nil {
		return nil, err
	}

	if patch.empty() {
		return nil, util.ErrNoFieldsToUpdate
	}
	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Description != nil {
		post.Description = *patch.Description
	}
	if patch.AttachmentURLs != nil {
		post.AttachmentURLs = datatypes.NewJSONSlice(patch.AttachmentURLs)
	}
	if patch.IsActive != nil {
		post.IsActive = *patch.IsActive
	}

	if err := s.PostRepo.Save(post); err != nil {
		return nil, err
	}
	view := toPostView(post)
	return &view, nil
}

func (s *PostService) Delete(id string, claims *util.Claims) error {
	post, err := s.PostRepo.FindByID(id)
	if err != nil {
		return err
	}

	if err := util.RequireOwner(claims, post.AuthorID); err != nil {
		return err
	}

	return s.PostRepo.Delete(id)
}
