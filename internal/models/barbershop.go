package models

import "time"

type Barbershop struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	OwnerID uint `gorm:"index" json:"owner_id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Slug    string `gorm:"size:120;uniqueIndex;not null" json:"slug"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	Timezone string `gorm:"size:50" json:"timezone"`

	// Grade pública de horários (slots)
	OpenHour    int `gorm:"default:8" json:"open_hour"`
	CloseHour   int `gorm:"default:18" json:"close_hour"`
	SlotMinutes int `gorm:"default:30" json:"slot_minutes"`

	MinAdvanceMinutes int  `gorm:"default:120" json:"min_advance_minutes"`
	Active            bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
