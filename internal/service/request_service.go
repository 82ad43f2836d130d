package service

import (
	"errors"
	"time"

	"studyshare_backend/internal/model"
	"studyshare_backend/internal/repository"
	"studyshare_backend/internal/util"

	"gorm.io/gorm"
)

type RequestService struct {
	RequestRepo  *repository.ResourceRequestRepository
	CategoryRepo *repository.CategoryRepository
}

func NewRequestService(
	requestRepo *repository.ResourceRequestRepository,
	categoryRepo *repository.CategoryRepository,
) *RequestService {
	return &RequestService{
		RequestRepo:  requestRepo,
		CategoryRepo: categoryRepo,
	}
}

type RequestView struct {
	ID                  string                `json:"id"`
	Topic               string                `json:"topic"`
	Description         string                `json:"description"`
	CategoryID          *string               `json:"category_id,omitempty"`
	CategoryName        string                `json:"category_name,omitempty"`
	PreferredFormat     model.PreferredFormat `json:"preferred_format"`
	Status              model.RequestStatus   `json:"status"`
	RequestedBy         string                `json:"requested_by"`
	RequesterName       string                `json:"requester_name,omitempty"`
	FulfilledBy         *string               `json:"fulfilled_by,omitempty"`
	FulfilledResourceID *string               `json:"fulfilled_resource_id,omitempty"`
	CreatedAt           time.Time             `json:"created_at"`
	UpdatedAt           time.Time             `json:"updated_at"`
}

func toRequestView(r *model.ResourceRequest) RequestView {
	view := RequestView{
		ID:                  r.ID,
		Topic:               r.Topic,
		Description:         r.Description,
		CategoryID:          r.CategoryID,
		PreferredFormat:     r.PreferredFormat,
		Status:              r.Status,
		RequestedBy:         r.RequestedBy,
		RequesterName:       r.Requester.Name,
		FulfilledBy:         r.FulfilledBy,
		FulfilledResourceID: r.FulfilledResourceID,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
	if r.Category != nil {
		view.CategoryName = r.Category.Name
	}
	return view
}

func toRequestViews(requests []model.ResourceRequest) []RequestView {
	views := make([]RequestView, len(requests))
	for i := range requests {
		views[i] = toRequestView(&requests[i])
	}
	return views
}

func (s *RequestService) List(status string, limit int) ([]RequestView, error) {
	requests, err := s.RequestRepo.FindAll(status, clampLimit(limit, util.DefaultListLimit))
	if err != nil {
		return nil, err
	}
	return toRequestViews(requests), nil
}

func (s *RequestService) Get(id string) (*RequestView, error) {
	request, err := s.RequestRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	view := toRequestView(request)
	return &view, nil
}

func (s *RequestService) ListByUser(userID string, limit int) ([]RequestView, error) {
	requests, err := s.RequestRepo.FindByUser(userID, clampLimit(limit, util.DefaultSearchLimit))
	if err != nil {
		return nil, err
	}
	return toRequestViews(requests), nil
}

type RequestCreate struct {
	Topic           string
	Description     string
	CategoryID      *string
	PreferredFormat model.PreferredFormat
}

func (s *RequestService) Create(in RequestCreate, requesterID string) (*RequestView, error) {
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

	format := in.PreferredFormat
	if format == "" {
		format = model.FormatAny
	}

	request := &model.ResourceRequest{
		Topic:           in.Topic,
		Description:     in.Description,
		CategoryID:      in.CategoryID,
		PreferredFormat: format,
		Status:          model.RequestPending,
		RequestedBy:     requesterID,
	}
	if err := s.RequestRepo.Create(request); err != nil {
		return nil, err
	}

	created, err := s.RequestRepo.FindByID(request.ID)
	if err != nil {
		return nil, err
	}
	view := toRequestView(created)
	return &view, nil
}

type RequestUpdate struct {
	Topic           *string
	Description     *string
	PreferredFormat *model.PreferredFormat
}

func (s *RequestService) Update(id string, patch RequestUpdate, claims *util.Claims) (*RequestView, error) {
	request, err := s.RequestRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := util.RequireOwner(claims, request.RequestedBy); err != nil {
		return nil, err
	}

	if patch.Topic == nil && patch.Description == nil && patch.PreferredFormat == nil {
		return nil, util.ErrNoFieldsToUpdate
	}
	if patch.Topic != nil {
		request.Topic = *patch.Topic
	}
	if patch.Description != nil {
		request.Description = *patch.Description
	}
	if patch.PreferredFormat != nil {
		request.PreferredFormat = *patch.PreferredFormat
	}

	if err := s.RequestRepo.Save(request); err != nil {
		return nil, err
	}
	view := toRequestView(request)
	return &view, nil
}

// UpdateStatus writes the status directly; there is no transition engine, so
// any member of the closed set is accepted, including regressions.
func (s *RequestService) UpdateStatus(id string, status model.RequestStatus, fulfilledBy, fulfilledResourceID *string, claims *util.Claims) (*RequestView, error) {
	request, err := s.RequestRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := util.RequireOwner(claims, request.RequestedBy); err != nil {
		return nil, err
	}

	request.Status = status
	if fulfilledBy != nil {
		request.FulfilledBy = fulfilledBy
	}
	if fulfilledResourceID != nil {
		request.FulfilledResourceID = fulfilledResourceID
	}

	if err := s.RequestRepo.Save(request); err != nil {
		return nil, err
	}
	view := toRequestView(request)
	return &view, nil
}

func (s *RequestService) Delete(id string, claims *util.Claims) error {
	request, err := s.RequestRepo.FindByID(id)
	if err != nil {
		return err
	}

	if err := util.RequireOwner(claims, request.RequestedBy); err != nil {
		return err
	}

	return s.RequestRepo.Delete(id)
}
