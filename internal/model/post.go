package model

import "gorm.io/datatypes"

type PostType string

const (
	PostResource     PostType = "resource"
	PostHelpRequest  PostType = "help_request"
	PostTutorFlyer   PostType = "tutor_flyer"
	PostAnnouncement PostType = "announcement"
)

// swagger:model Post
type Post struct {
	UUIDBase
	Title          string                      `gorm:"size:200;not null" json:"title"`
	Description    string                      `gorm:"size:5000;not null" json:"description"`
	PostType       PostType                    `gorm:"size:20;not null;index" json:"post_type"`
	CategoryID     *string                     `gorm:"index;type:varchar(36)" json:"category_id,omitempty"`
	Category       *Category                   `gorm:"foreignKey:CategoryID" json:"-"`
	AuthorID       string                      `gorm:"index;type:varchar(36);not null" json:"author_id"`
	Author         User                        `gorm:"foreignKey:AuthorID" json:"-"`
	AttachmentURLs datatypes.JSONSlice[string] `json:"attachment_urls"`
	IsPinned       bool                        `gorm:"default:false" json:"is_pinned"`
	IsActive       bool                        `gorm:"default:true;index" json:"is_active"`
}

func (Post) TableName() string {
	return "posts"
}
