package model

// Static reference data for grouping resources and posts.
type Category struct {
	UUIDBase
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:500" json:"description,omitempty"`
	Icon        string `gorm:"size:50" json:"icon,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}
