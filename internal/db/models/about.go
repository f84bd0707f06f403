package models

import "time"

// CarouselImage is one picture in the about page carousel.
type CarouselImage struct {
	ID        uint64 `gorm:"primaryKey"`
	ImageURL  string `gorm:"column:image_url;size:500;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName keeps the deployed collection name.
func (CarouselImage) TableName() string { return "carousels" }

// CoreValue is one "what I value" entry on the about page.
type CoreValue struct {
	ID          uint64 `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"column:values_description;type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName keeps the deployed collection name.
func (CoreValue) TableName() string { return "core" }

// JourneyEntry is one step of the about page timeline.
type JourneyEntry struct {
	ID          uint64 `gorm:"primaryKey"`
	Period      string `gorm:"column:experience_time;size:100;not null"`
	Description string `gorm:"column:experience_description;type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName keeps the deployed collection name.
func (JourneyEntry) TableName() string { return "journey" }
