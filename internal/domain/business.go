package domain

import (
	"time"

	"pourhouse/pkg/hours"
)

// BusinessInfo — профиль заведения. В базе хранится единственная запись;
// расписание и исключения лежат в JSONB и валидируются при сохранении,
// поэтому путь чтения работает с уже проверенными значениями.
type BusinessInfo struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	Tagline       string            `json:"tagline,omitempty"`
	Address       string            `json:"address"`
	Phone         string            `json:"phone"`
	Email         string            `json:"email"`
	Timezone      string            `json:"timezone"`
	Hours         hours.WeeklyHours `json:"hours"`
	SpecialHours  hours.Overrides   `json:"special_hours,omitempty"`
	Description   string            `json:"description,omitempty"`
	WelcomeText   string            `json:"welcome_text,omitempty"`
	FooterTagline string            `json:"footer_tagline,omitempty"`
	MetaText      string            `json:"meta_text,omitempty"`
	HeroImageURL  string            `json:"hero_image_url,omitempty"`
	FacebookURL   string            `json:"facebook_url,omitempty"`
	InstagramURL  string            `json:"instagram_url,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type UpdateBusinessInfoDTO struct {
	Name          *string `json:"name"`
	Tagline       *string `json:"tagline"`
	Address       *string `json:"address"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Timezone      *string `json:"timezone"`
	Description   *string `json:"description"`
	WelcomeText   *string `json:"welcome_text"`
	FooterTagline *string `json:"footer_tagline"`
	MetaText      *string `json:"meta_text"`
	FacebookURL   *string `json:"facebook_url" binding:"omitempty,url"`
	InstagramURL  *string `json:"instagram_url" binding:"omitempty,url"`
}

type UpdateHoursDTO struct {
	Hours        hours.WeeklyHours `json:"hours" binding:"required"`
	SpecialHours hours.Overrides   `json:"special_hours"`
}

// DaySchedule — строка таблицы часов работы на публичной странице.
type DaySchedule struct {
	Weekday string `json:"weekday"`
	Display string `json:"display"`
}

// WeekSchedule — табличное расписание плюс ближайшие исключения.
type WeekSchedule struct {
	Days     []DaySchedule  `json:"days"`
	Upcoming []UpcomingNote `json:"upcoming,omitempty"`
}

type UpcomingNote struct {
	Date    string `json:"date"`
	Display string `json:"display"`
	Note    string `json:"note,omitempty"`
}
