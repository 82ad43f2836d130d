package model

import "gorm.io/datatypes"

type FileType string

const (
	FilePDF       FileType = "pdf"
	FileVideo     FileType = "video"
	FileNotes     FileType = "notes"
	FilePastPaper FileType = "past_paper"
	FileLink      FileType = "link"
	FileOther     FileType = "other"
)

// swagger:model Resource
type Resource struct {
	UUIDBase
	Title         string             `gorm:"size:200;not null" json:"title"`
	Description   string             `gorm:"size:2000" json:"description,omitempty"`
	CategoryID    string             `gorm:"index;type:varchar(36);not null" json:"category_id"`
	Category      Category           `gorm:"foreignKey:CategoryID" json:"-"`
	FileURL       string             `gorm:"size:500" json:"file_url,omitempty"`
	FileType      FileType           `gorm:"size:20" json:"file_type,omitempty"`
	Tags          datatypes.JSONSlice[string] `json:"tags"`
	AuthorID      string             `gorm:"index;type:varchar(36);not null" json:"author_id"`
	Author        User               `gorm:"foreignKey:AuthorID" json:"-"`
	DownloadCount int                `gorm:"default:0" json:"download_count"`
	ViewCount     int                `gorm:"default:0" json:"view_count"`
}

func (Resource) TableName() string {
	return "resources"
}
