package model

import "gorm.io/datatypes"

// One-to-one with a User; created when the user opts into tutoring.
type Tutor struct {
	UUIDBase
	UserID       string                                `gorm:"uniqueIndex;type:varchar(36);not null" json:"user_id"`
	User         User                                  `gorm:"foreignKey:UserID" json:"-"`
	Subjects     datatypes.JSONSlice[string]           `json:"subjects"`
	Bio          string                                `gorm:"size:2000" json:"bio,omitempty"`
	HourlyRate   *float64                              `json:"hourly_rate,omitempty"`
	Availability datatypes.JSONType[map[string][]string] `json:"availability"`
	Rating       float64                               `gorm:"default:0" json:"rating"`
	TotalReviews int                                   `gorm:"default:0" json:"total_reviews"`
	ContactEmail string                                `gorm:"size:254" json:"contact_email,omitempty"`
	BookingLink  string                                `gorm:"size:500" json:"booking_link,omitempty"`
	IsAvailable  bool                                  `gorm:"default:true;index" json:"is_available"`
}

func (Tutor) TableName() string {
	return "tutors"
}

type TutorRequestStatus string

const (
	TutorReqPending TutorRequestStatus = "pending"
	TutorReqMatched TutorRequestStatus = "matched"
	TutorReqClosed  TutorRequestStatus = "closed"
)

type TutorRequest struct {
	UUIDBase
	StudentID         string             `gorm:"index;type:varchar(36);not null" json:"student_id"`
	Student           User               `gorm:"foreignKey:StudentID" json:"-"`
	Subject           string             `gorm:"size:100;not null" json:"subject"`
	Description       string             `gorm:"size:2000" json:"description,omitempty"`
	PreferredSchedule string             `gorm:"size:200" json:"preferred_schedule,omitempty"`
	Status            TutorRequestStatus `gorm:"size:20;default:'pending';index" json:"status"`
	MatchedTutorID    *string            `gorm:"type:varchar(36)" json:"matched_tutor_id,omitempty"`
}

func (TutorRequest) TableName() string {
	return "tutor_requests"
}
