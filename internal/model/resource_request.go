package model

type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestInProgress RequestStatus = "in_progress"
	RequestFulfilled  RequestStatus = "fulfilled"
	RequestClosed     RequestStatus = "closed"
)

type PreferredFormat string

const (
	FormatPDF       PreferredFormat = "pdf"
	FormatVideo     PreferredFormat = "video"
	FormatNotes     PreferredFormat = "notes"
	FormatPastPaper PreferredFormat = "past_paper"
	FormatAny       PreferredFormat = "any"
)

// A student's ask for material that does not exist yet. Lifecycle:
// pending -> in_progress -> fulfilled|closed, advanced only by explicit
// status updates.
type ResourceRequest struct {
	UUIDBase
	Topic               string          `gorm:"size:200;not null" json:"topic"`
	Description         string          `gorm:"size:2000;not null" json:"description"`
	CategoryID          *string         `gorm:"index;type:varchar(36)" json:"category_id,omitempty"`
	Category            *Category       `gorm:"foreignKey:CategoryID" json:"-"`
	PreferredFormat     PreferredFormat `gorm:"size:20;default:'any'" json:"preferred_format"`
	Status              RequestStatus   `gorm:"size:20;default:'pending';index" json:"status"`
	RequestedBy         string          `gorm:"index;type:varchar(36);not null" json:"requested_by"`
	Requester           User            `gorm:"foreignKey:RequestedBy" json:"-"`
	FulfilledBy         *string         `gorm:"type:varchar(36)" json:"fulfilled_by,omitempty"`
	FulfilledResourceID *string         `gorm:"type:varchar(36)" json:"fulfilled_resource_id,omitempty"`
}

func (ResourceRequest) TableName() string {
	return "resource_requests"
}
