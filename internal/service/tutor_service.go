package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"studyshare_backend/internal/model"
	"studyshare_backend/internal/repository"
	"studyshare_backend/internal/util"

	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	subjectsCacheKey = "tutors:subjects"
	subjectsCacheTTL = 5 * time.Minute
)

type TutorService struct {
	TutorRepo        *repository.TutorRepository
	TutorRequestRepo *repository.TutorRequestRepository
	UserRepo         *repository.UserRepository
	Redis            *redis.Client
}

func NewTutorService(
	tutorRepo *repository.TutorRepository,
	tutorRequestRepo *repository.TutorRequestRepository,
	userRepo *repository.UserRepository,
	rdb *redis.Client,
) *TutorService {
	return &TutorService{
		TutorRepo:        tutorRepo,
		TutorRequestRepo: tutorRequestRepo,
		UserRepo:         userRepo,
		Redis:            rdb,
	}
}

type TutorView struct {
	ID           string              `json:"id"`
	UserID       string              `json:"user_id"`
	Name         string              `json:"name,omitempty"`
	Email        string              `json:"email,omitempty"`
	Subjects     []string            `json:"subjects"`
	Bio          string              `json:"bio,omitempty"`
	HourlyRate   *float64            `json:"hourly_rate,omitempty"`
	Availability map[string][]string `json:"availability"`
	Rating       float64             `json:"rating"`
	TotalReviews int                 `json:"total_reviews"`
	ContactEmail string              `json:"contact_email,omitempty"`
	BookingLink  string              `json:"booking_link,omitempty"`
	IsAvailable  bool                `json:"is_available"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func toTutorView(t *model.Tutor) TutorView {
	subjects := []string(t.Subjects)
	if subjects == nil {
		subjects = []string{}
	}
	availability := t.Availability.Data()
	if availability == nil {
		availability = map[string][]string{}
	}
	return TutorView{
		ID:           t.ID,
		UserID:       t.UserID,
		Name:         t.User.Name,
		Email:        t.User.Email,
		Subjects:     subjects,
		Bio:          t.Bio,
		HourlyRate:   t.HourlyRate,
		Availability: availability,
		Rating:       t.Rating,
		TotalReviews: t.TotalReviews,
		ContactEmail: t.ContactEmail,
		BookingLink:  t.BookingLink,
		IsAvailable:  t.IsAvailable,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func toTutorViews(tutors []model.Tutor) []TutorView {
	views := make([]TutorView, len(tutors))
	for i := range tutors {
		views[i] = toTutorView(&tutors[i])
	}
	return views
}

func (s *TutorService) List(available *bool, limit int) ([]TutorView, error) {
	tutors, err := s.TutorRepo.FindAll(available, clampLimit(limit, util.DefaultListLimit))
	if err != nil {
		return nil, err
	}
	return toTutorViews(tutors), nil
}

func (s *TutorService) Get(id string) (*TutorView, error) {
	tutor, err := s.TutorRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	view := toTutorView(tutor)
	return &view, nil
}

// ListSubjects returns the sorted distinct subjects of available tutors,
// cached briefly in Redis.
func (s *TutorService) ListSubjects(ctx context.Context) ([]string, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, subjectsCacheKey).Result(); err == nil {
			var subjects []string
			if json.Unmarshal([]byte(cached), &subjects) == nil {
				return subjects, nil
			}
		}
	}

	available := true
	tutors, err := s.TutorRepo.FindAll(&available, util.MaxListLimit)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	subjects := []string{}
	for _, t := range tutors {
		for _, subject := range t.Subjects {
			if !seen[subject] {
				seen[subject] = true
				subjects = append(subjects, subject)
			}
		}
	}
	sort.Strings(subjects)

	if s.Redis != nil {
		if encoded, err := json.Marshal(subjects); err == nil {
			s.Redis.Set(ctx, subjectsCacheKey, encoded, subjectsCacheTTL)
		}
	}

	return subjects, nil
}

// SearchBySubject matches available tutors whose subject list contains the
// query, case-insensitively. The second return value lists every subject on
// offer, used for the zero-result suggestion payload.
func (s *TutorService) SearchBySubject(subject string, limit int) ([]TutorView, []string, error) {
	available := true
	tutors, err := s.TutorRepo.FindAll(&available, clampLimit(limit, util.DefaultSearchLimit))
	if err != nil {
		return nil, nil, err
	}

	needle := strings.ToLower(subject)
	matched := []TutorView{}
	seen := make(map[string]bool)
	allSubjects := []string{}

	for i := range tutors {
		hit := false
		for _, sub := range tutors[i].Subjects {
			if !seen[sub] {
				seen[sub] = true
				allSubjects = append(allSubjects, sub)
			}
			if strings.Contains(strings.ToLower(sub), needle) {
				hit = true
			}
		}
		if hit {
			matched = append(matched, toTutorView(&tutors[i]))
		}
	}
	sort.Strings(allSubjects)

	return matched, allSubjects, nil
}

type TutorCreate struct {
	Subjects     []string
	Bio          string
	HourlyRate   *float64
	Availability map[string][]string
	ContactEmail string
	BookingLink  string
}

func (s *TutorService) Create(in TutorCreate, userID string) (*TutorView, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		return nil, err
	}

	_, err := s.TutorRepo.FindByUserID(userID)
	if err == nil {
		return nil, util.ErrTutorProfileExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	availability := in.Availability
	if availability == nil {
		availability = map[string][]string{}
	}

	tutor := &model.Tutor{
		UserID:       userID,
		Subjects:     datatypes.NewJSONSlice(in.Subjects),
		Bio:          in.Bio,
		HourlyRate:   in.HourlyRate,
		Availability: datatypes.NewJSONType(availability),
		ContactEmail: in.ContactEmail,
		BookingLink:  in.BookingLink,
		IsAvailable:  true,
	}
	if err := s.TutorRepo.Create(tutor); err != nil {
		return nil, err
	}

	s.invalidateSubjectsCache()

	created, err := s.TutorRepo.FindByID(tutor.ID)
	if err != nil {
		return nil, err
	}
	view := toTutorView(created)
	return &view, nil
}

type TutorUpdate struct {
	Subjects     []string
	Bio          *string
	HourlyRate   *float64
	Availability map[string][]string
	ContactEmail *string
	BookingLink  *string
	IsAvailable  *bool
}

func (t TutorUpdate) empty() bool {
	return t.Subjects == nil && t.Bio == nil && t.HourlyRate == nil &&
		t.Availability == nil && t.ContactEmail == nil && t.BookingLink == nil &&
		t.IsAvailable == nil
}

func (s *TutorService) Update(id string, patch TutorUpdate, claims *util.Claims) (*TutorView, error) {
	tutor, err := s.TutorRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := util.RequireOwner(claims, tutor.UserID); err != nil {
		return nil, err
	}

	if patch.empty() {
		return nil, util.ErrNoFieldsToUpdate
	}
	if patch.Subjects != nil {
		tutor.Subjects = datatypes.NewJSONSlice(patch.Subjects)
	}
	if patch.Bio != nil {
		tutor.Bio = *patch.Bio
	}
	if patch.HourlyRate != nil {
		tutor.HourlyRate = patch.HourlyRate
	}
	if patch.Availability != nil {
		tutor.Availability = datatypes.NewJSONType(patch.Availability)
	}
	if patch.ContactEmail != nil {
		tutor.ContactEmail = *patch.ContactEmail
	}
	if patch.BookingLink != nil {
		tutor.BookingLink = *patch.BookingLink
	}
	if patch.IsAvailable != nil {
		tutor.IsAvailable = *patch.IsAvailable
	}

	if err := s.TutorRepo.Save(tutor); err != nil {
		return nil, err
	}

	s.invalidateSubjectsCache()

	view := toTutorView(tutor)
	return &view, nil
}

func (s *TutorService) SetAvailability(id string, isAvailable bool, claims *util.Claims) error {
	tutor, err := s.TutorRepo.FindByID(id)
	if err != nil {
		return err
	}

	if err := util.RequireOwner(claims, tutor.UserID); err != nil {
		return err
	}

	tutor.IsAvailable = isAvailable
	if err := s.TutorRepo.Save(tutor); err != nil {
		return err
	}

	s.invalidateSubjectsCache()
	return nil
}

func (s *TutorService) Delete(id string, claims *util.Claims) error {
	tutor, err := s.TutorRepo.FindByID(id)
	if err != nil {
		return err
	}

	if err := util.RequireOwner(claims, tutor.UserID); err != nil {
		return err
	}

	if err := s.TutorRepo.Delete(id); err != nil {
		return err
	}

	s.invalidateSubjectsCache()
	return nil
}

func (s *TutorService) invalidateSubjectsCache() {
	if s.Redis != nil {
		s.Redis.Del(context.Background(), subjectsCacheKey)
	}
}

// Tutor requests

type TutorRequestView struct {
	ID                string                   `json:"id"`
	StudentID         string                   `json:"student_id"`
	StudentName       string                   `json:"student_name,omitempty"`
	Subject           string                   `json:"subject"`
	Description       string                   `json:"description,omitempty"`
	PreferredSchedule string                   `json:"preferred_schedule,omitempty"`
	Status            model.TutorRequestStatus `json:"status"`
	MatchedTutorID    *string                  `json:"matched_tutor_id,omitempty"`
	CreatedAt         time.Time                `json:"created_at"`
	UpdatedAt         time.Time                `json:"updated_at"`
}

func toTutorRequestView(r *model.TutorRequest) TutorRequestView {
	return TutorRequestView{
		ID:                r.ID,
		StudentID:         r.StudentID,
		StudentName:       r.Student.Name,
		Subject:           r.Subject,
		Description:       r.Description,
		PreferredSchedule: r.PreferredSchedule,
		Status:            r.Status,
		MatchedTutorID:    r.MatchedTutorID,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func (s *TutorService) ListRequests(status string, limit int) ([]TutorRequestView, error) {
	requests, err := s.TutorRequestRepo.FindAll(status, clampLimit(limit, util.DefaultListLimit))
	if err != nil {
		return nil, err
	}
	views := make([]TutorRequestView, len(requests))
	for i := range requests {
		views[i] = toTutorRequestView(&requests[i])
	}
	return views, nil
}

type TutorRequestCreate struct {
	Subject           string
	Description       string
	PreferredSchedule string
}

func (s *TutorService) CreateRequest(in TutorRequestCreate, studentID string) (*TutorRequestView, error) {
	request := &model.TutorRequest{
		StudentID:         studentID,
		Subject:           in.Subject,
		Description:       in.Description,
		PreferredSchedule: in.PreferredSchedule,
		Status:            model.TutorReqPending,
	}
	if err := s.TutorRequestRepo.Create(request); err != nil {
		return nil, err
	}

	created, err := s.TutorRequestRepo.FindByID(request.ID)
	if err != nil {
		return nil, err
	}
	view := toTutorRequestView(created)
	return &view, nil
}
