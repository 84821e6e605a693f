package domain

import (
	"time"
)

type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateCategoryDTO struct {
	Name        string `json:"name" binding:"required,max=50"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active"`
}

type UpdateCategoryDTO struct {
	Name        *string `json:"name" binding:"omitempty,max=50"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sort_order"`
	IsActive    *bool   `json:"is_active"`
}

type Temperature string

const (
	TemperatureHot  Temperature = "hot"
	TemperatureCold Temperature = "cold"
	TemperatureBoth Temperature = "both"
	TemperatureRoom Temperature = "room"
)

type ItemSize string

const (
	ItemSizeSmall   ItemSize = "small"
	ItemSizeMedium  ItemSize = "medium"
	ItemSizeLarge   ItemSize = "large"
	ItemSizeXL      ItemSize = "xl"
	ItemSizeOneSize ItemSize = "one_size"
)

type MenuItem struct {
	ID               int64       `json:"id"`
	CategoryID       int64       `json:"category_id"`
	Name             string      `json:"name"`
	Slug             string      `json:"slug"`
	Description      string      `json:"description"`
	PriceCents       int         `json:"price_cents"`
	Temperature      Temperature `json:"temperature"`
	Size             ItemSize    `json:"size"`
	Calories         *int        `json:"calories,omitempty"`
	ContainsCaffeine bool        `json:"contains_caffeine"`
	DietaryNotes     string      `json:"dietary_notes,omitempty"`
	PrepTimeMinutes  int         `json:"prep_time_minutes"`
	IsAvailable      bool        `json:"is_available"`
	IsFeatured       bool        `json:"is_featured"`
	ImageURL         string      `json:"image_url,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

type CreateMenuItemDTO struct {
	CategoryID       int64       `json:"category_id" binding:"required"`
	Name             string      `json:"name" binding:"required,max=100"`
	Slug             string      `json:"slug"`
	Description      string      `json:"description" binding:"required"`
	PriceCents       int         `json:"price_cents" binding:"required,min=1"`
	Temperature      Temperature `json:"temperature" binding:"omitempty,oneof=hot cold both room"`
	Size             ItemSize    `json:"size" binding:"omitempty,oneof=small medium large xl one_size"`
	Calories         *int        `json:"calories" binding:"omitempty,min=0"`
	ContainsCaffeine bool        `json:"contains_caffeine"`
	DietaryNotes     string      `json:"dietary_notes" binding:"omitempty,max=200"`
	PrepTimeMinutes  int         `json:"prep_time_minutes" binding:"omitempty,min=1,max=60"`
	IsAvailable      *bool       `json:"is_available"`
	IsFeatured       bool        `json:"is_featured"`
}

type UpdateMenuItemDTO struct {
	CategoryID       *int64       `json:"category_id"`
	Name             *string      `json:"name" binding:"omitempty,max=100"`
	Slug             *string      `json:"slug"`
	Description      *string      `json:"description"`
	PriceCents       *int         `json:"price_cents" binding:"omitempty,min=1"`
	Temperature      *Temperature `json:"temperature" binding:"omitempty,oneof=hot cold both room"`
	Size             *ItemSize    `json:"size" binding:"omitempty,oneof=small medium large xl one_size"`
	Calories         *int         `json:"calories" binding:"omitempty,min=0"`
	ContainsCaffeine *bool        `json:"contains_caffeine"`
	DietaryNotes     *string      `json:"dietary_notes" binding:"omitempty,max=200"`
	PrepTimeMinutes  *int         `json:"prep_time_minutes" binding:"omitempty,min=1,max=60"`
	IsAvailable      *bool        `json:"is_available"`
	IsFeatured       *bool        `json:"is_featured"`
}

type MenuItemFilter struct {
	CategoryID  *int64  `json:"category_id"`
	IsAvailable *bool   `json:"is_available"`
	IsFeatured  *bool   `json:"is_featured"`
	SearchTerm  *string `json:"search_term"`
	Limit       int     `json:"limit"`
	Offset      int     `json:"offset"`
}

// MenuSection — категория с её позициями для публичной страницы меню.
type MenuSection struct {
	Category Category   `json:"category"`
	Items    []MenuItem `json:"items"`
}

type RecipeDifficulty string

const (
	RecipeDifficultyEasy   RecipeDifficulty = "easy"
	RecipeDifficultyMedium RecipeDifficulty = "medium"
	RecipeDifficultyHard   RecipeDifficulty = "hard"
)

// Recipe — внутренняя карточка приготовления позиции, видна только персоналу.
type Recipe struct {
	ID              int64            `json:"id"`
	MenuItemID      int64            `json:"menu_item_id"`
	Ingredients     string           `json:"ingredients"`
	Instructions    string           `json:"instructions"`
	PrepTimeMinutes int              `json:"prep_time_minutes"`
	Difficulty      RecipeDifficulty `json:"difficulty"`
	Equipment       string           `json:"equipment,omitempty"`
	YieldQuantity   string           `json:"yield_quantity"`
	Notes           string           `json:"notes,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type CreateRecipeDTO struct {
	Ingredients     string           `json:"ingredients" binding:"required"`
	Instructions    string           `json:"instructions" binding:"required"`
	PrepTimeMinutes int              `json:"prep_time_minutes" binding:"required,min=1"`
	Difficulty      RecipeDifficulty `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Equipment       string           `json:"equipment"`
	YieldQuantity   string           `json:"yield_quantity"`
	Notes           string           `json:"notes"`
}

type UpdateRecipeDTO struct {
	Ingredients     *string           `json:"ingredients"`
	Instructions    *string           `json:"instructions"`
	PrepTimeMinutes *int              `json:"prep_time_minutes" binding:"omitempty,min=1"`
	Difficulty      *RecipeDifficulty `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Equipment       *string           `json:"equipment"`
	YieldQuantity   *string           `json:"yield_quantity"`
	Notes           *string           `json:"notes"`
}
