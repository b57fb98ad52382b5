package models

import (
	"time"
)

type Hackathon struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	Title                string    `gorm:"size:255;not null" json:"title"`
	Description          string    `gorm:"type:text" json:"description"`
	Platform             string    `gorm:"size:100" json:"platform"`
	Themes               string    `gorm:"size:500" json:"themes"`
	Tags                 string    `gorm:"size:500" json:"tags"`
	Sponsors             string    `gorm:"size:500" json:"sponsors"`
	Location             string    `gorm:"size:255" json:"location"`
	IsVirtual            bool      `gorm:"default:false" json:"is_virtual"`
	PrizePool            float64   `gorm:"default:0" json:"prize_pool"`
	Participants         uint      `gorm:"default:0" json:"participants"`
	StartDate            time.Time `json:"start_date"`
	RegistrationDeadline time.Time `json:"registration_deadline"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type FavoriteHackathon struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index:idx_user_hackathon,unique" json:"user_id"`
	HackathonID uint      `gorm:"not null;index:idx_user_hackathon,unique" json:"hackathon_id"`
	Hackathon   Hackathon `gorm:"foreignKey:HackathonID" json:"hackathon,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
