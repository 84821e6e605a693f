package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pourhouse/internal/domain"
	"pourhouse/pkg/hours"
)

type BusinessRepo struct {
	db *pgxpool.Pool
}

func NewBusinessRepository(db *pgxpool.Pool) *BusinessRepo {
	return &BusinessRepo{
		db: db,
	}
}

// Get возвращает единственную запись профиля заведения.
func (r *BusinessRepo) Get(ctx context.Context) (*domain.BusinessInfo, error) {
	query := `
		SELECT id, name, tagline, address, phone, email, timezone, hours, special_hours,
		       description, welcome_text, footer_tagline, meta_text, hero_image_url,
		       facebook_url, instagram_url, created_at, updated_at
		FROM business_info
		ORDER BY id
		LIMIT 1
	`

	var info domain.BusinessInfo
	var hoursRaw, specialRaw []byte
	err := r.db.QueryRow(ctx, query).Scan(
		&info.ID,
		&info.Name,
		&info.Tagline,
		&info.Address,
		&info.Phone,
		&info.Email,
		&info.Timezone,
		&hoursRaw,
		&specialRaw,
		&info.Description,
		&info.WelcomeText,
		&info.FooterTagline,
		&info.MetaText,
		&info.HeroImageURL,
		&info.FacebookURL,
		&info.InstagramURL,
		&info.CreatedAt,
		&info.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("профиль заведения не найден: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка получения профиля заведения: %w", err)
	}

	if len(hoursRaw) > 0 {
		if err := json.Unmarshal(hoursRaw, &info.Hours); err != nil {
			return nil, fmt.Errorf("ошибка разбора расписания: %w", err)
		}
	}
	if len(specialRaw) > 0 {
		if err := json.Unmarshal(specialRaw, &info.SpecialHours); err != nil {
			return nil, fmt.Errorf("ошибка разбора особых часов: %w", err)
		}
	}

	return &info, nil
}

func (r *BusinessRepo) Update(ctx context.Context, dto domain.UpdateBusinessInfoDTO) error {
	setValues := make([]string, 0)
	args := make([]interface{}, 0)
	argID := 1

	appendField := func(column string, value interface{}) {
		setValues = append(setValues, fmt.Sprintf("%s = $%d", column, argID))
		args = append(args, value)
		argID++
	}

	if dto.Name != nil {
		appendField("name", *dto.Name)
	}
	if dto.Tagline != nil {
		appendField("tagline", *dto.Tagline)
	}
	if dto.Address != nil {
		appendField("address", *dto.Address)
	}
	if dto.Phone != nil {
		appendField("phone", *dto.Phone)
	}
	if dto.Email != nil {
		appendField("email", *dto.Email)
	}
	if dto.Timezone != nil {
		appendField("timezone", *dto.Timezone)
	}
	if dto.Description != nil {
		appendField("description", *dto.Description)
	}
	if dto.WelcomeText != nil {
		appendField("welcome_text", *dto.WelcomeText)
	}
	if dto.FooterTagline != nil {
		appendField("footer_tagline", *dto.FooterTagline)
	}
	if dto.MetaText != nil {
		appendField("meta_text", *dto.MetaText)
	}
	if dto.FacebookURL != nil {
		appendField("facebook_url", *dto.FacebookURL)
	}
	if dto.InstagramURL != nil {
		appendField("instagram_url", *dto.InstagramURL)
	}

	appendField("updated_at", time.Now())

	query := fmt.Sprintf(`
		UPDATE business_info
		SET %s
		WHERE id = (SELECT id FROM business_info ORDER BY id LIMIT 1)
	`, strings.Join(setValues, ", "))

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления профиля заведения: %w", err)
	}

	return nil
}

func (r *BusinessRepo) UpdateHours(ctx context.Context, weekly hours.WeeklyHours, special hours.Overrides) error {
	hoursRaw, err := json.Marshal(weekly)
	if err != nil {
		return fmt.Errorf("ошибка сериализации расписания: %w", err)
	}

	specialRaw, err := json.Marshal(special)
	if err != nil {
		return fmt.Errorf("ошибка сериализации особых часов: %w", err)
	}

	query := `
		UPDATE business_info
		SET hours = $1, special_hours = $2, updated_at = $3
		WHERE id = (SELECT id FROM business_info ORDER BY id LIMIT 1)
	`

	_, err = r.db.Exec(ctx, query, hoursRaw, specialRaw, time.Now())
	if err != nil {
		return fmt.Errorf("ошибка обновления расписания: %w", err)
	}

	return nil
}

func (r *BusinessRepo) UpdateHeroImage(ctx context.Context, imageURL string) error {
	query := `
		UPDATE business_info
		SET hero_image_url = $1, updated_at = $2
		WHERE id = (SELECT id FROM business_info ORDER BY id LIMIT 1)
	`

	_, err := r.db.Exec(ctx, query, imageURL, time.Now())
	if err != nil {
		return fmt.Errorf("ошибка обновления изображения: %w", err)
	}

	return nil
}
