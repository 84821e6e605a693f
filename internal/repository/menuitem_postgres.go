package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pourhouse/internal/domain"
)

type MenuItemRepo struct {
	db *pgxpool.Pool
}

func NewMenuItemRepository(db *pgxpool.Pool) *MenuItemRepo {
	return &MenuItemRepo{
		db: db,
	}
}

const menuItemColumns = `id, category_id, name, slug, description, price_cents, temperature, size,
	calories, contains_caffeine, dietary_notes, prep_time_minutes, is_available, is_featured,
	image_url, created_at, updated_at`

func (r *MenuItemRepo) Create(ctx context.Context, dto domain.CreateMenuItemDTO, slug string) (int64, error) {
	query := `
		INSERT INTO menu_items (category_id, name, slug, description, price_cents, temperature, size,
			calories, contains_caffeine, dietary_notes, prep_time_minutes, is_available, is_featured,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
		RETURNING id
	`

	temperature := dto.Temperature
	if temperature == "" {
		temperature = domain.TemperatureBoth
	}

	size := dto.Size
	if size == "" {
		size = domain.ItemSizeOneSize
	}

	prepTime := dto.PrepTimeMinutes
	if prepTime == 0 {
		prepTime = 5
	}

	isAvailable := true
	if dto.IsAvailable != nil {
		isAvailable = *dto.IsAvailable
	}

	now := time.Now()
	var id int64
	err := r.db.QueryRow(ctx, query,
		dto.CategoryID,
		dto.Name,
		slug,
		dto.Description,
		dto.PriceCents,
		temperature,
		size,
		dto.Calories,
		dto.ContainsCaffeine,
		dto.DietaryNotes,
		prepTime,
		isAvailable,
		dto.IsFeatured,
		now,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания позиции меню: %w", err)
	}

	return id, nil
}

func (r *MenuItemRepo) GetByID(ctx context.Context, id int64) (*domain.MenuItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM menu_items WHERE id = $1`, menuItemColumns)

	item, err := scanMenuItem(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("позиция меню с id %d не найдена", id)
		}
		return nil, fmt.Errorf("ошибка получения позиции меню: %w", err)
	}

	return item, nil
}

func scanMenuItem(row pgx.Row) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := row.Scan(
		&item.ID,
		&item.CategoryID,
		&item.Name,
		&item.Slug,
		&item.Description,
		&item.PriceCents,
		&item.Temperature,
		&item.Size,
		&item.Calories,
		&item.ContainsCaffeine,
		&item.DietaryNotes,
		&item.PrepTimeMinutes,
		&item.IsAvailable,
		&item.IsFeatured,
		&item.ImageURL,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepo) Update(ctx context.Context, id int64, dto domain.UpdateMenuItemDTO) error {
	setValues := make([]string, 0)
	args := make([]interface{}, 0)
	argID := 1

	appendField := func(column string, value interface{}) {
		setValues = append(setValues, fmt.Sprintf("%s = $%d", column, argID))
		args = append(args, value)
		argID++
	}

	if dto.CategoryID != nil {
		appendField("category_id", *dto.CategoryID)
	}
	if dto.Name != nil {
		appendField("name", *dto.Name)
	}
	if dto.Slug != nil {
		appendField("slug", *dto.Slug)
	}
	if dto.Description != nil {
		appendField("description", *dto.Description)
	}
	if dto.PriceCents != nil {
		appendField("price_cents", *dto.PriceCents)
	}
	if dto.Temperature != nil {
		appendField("temperature", *dto.Temperature)
	}
	if dto.Size != nil {
		appendField("size", *dto.Size)
	}
	if dto.Calories != nil {
		appendField("calories", *dto.Calories)
	}
	if dto.ContainsCaffeine != nil {
		appendField("contains_caffeine", *dto.ContainsCaffeine)
	}
	if dto.DietaryNotes != nil {
		appendField("dietary_notes", *dto.DietaryNotes)
	}
	if dto.PrepTimeMinutes != nil {
		appendField("prep_time_minutes", *dto.PrepTimeMinutes)
	}
	if dto.IsAvailable != nil {
		appendField("is_available", *dto.IsAvailable)
	}
	if dto.IsFeatured != nil {
		appendField("is_featured", *dto.IsFeatured)
	}

	appendField("updated_at", time.Now())

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE menu_items
		SET %s
		WHERE id = $%d
	`, strings.Join(setValues, ", "), argID)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления позиции меню: %w", err)
	}

	return nil
}

func (r *MenuItemRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM menu_items WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления позиции меню: %w", err)
	}

	return nil
}

func (r *MenuItemRepo) List(ctx context.Context, filter domain.MenuItemFilter) ([]domain.MenuItem, int, error) {
	conditions, args := menuItemConditions(filter)

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM menu_items" + whereClause

	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчёта позиций меню: %w", err)
	}

	argID := len(args) + 1
	query := fmt.Sprintf(`SELECT %s FROM menu_items%s ORDER BY name LIMIT $%d OFFSET $%d`,
		menuItemColumns, whereClause, argID, argID+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка позиций меню: %w", err)
	}
	defer rows.Close()

	items := make([]domain.MenuItem, 0)
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ошибка сканирования строки позиции меню: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ошибка при итерации по строкам: %w", err)
	}

	return items, total, nil
}

func menuItemConditions(filter domain.MenuItemFilter) ([]string, []interface{}) {
	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argID := 1

	if filter.CategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", argID))
		args = append(args, *filter.CategoryID)
		argID++
	}

	if filter.IsAvailable != nil {
		conditions = append(conditions, fmt.Sprintf("is_available = $%d", argID))
		args = append(args, *filter.IsAvailable)
		argID++
	}

	if filter.IsFeatured != nil {
		conditions = append(conditions, fmt.Sprintf("is_featured = $%d", argID))
		args = append(args, *filter.IsFeatured)
		argID++
	}

	if filter.SearchTerm != nil {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", argID, argID))
		args = append(args, "%"+*filter.SearchTerm+"%")
		argID++
	}

	return conditions, args
}

func (r *MenuItemRepo) UpdateImage(ctx context.Context, id int64, imageURL string) error {
	query := `UPDATE menu_items SET image_url = $1, updated_at = $2 WHERE id = $3`

	_, err := r.db.Exec(ctx, query, imageURL, time.Now(), id)
	if err != nil {
		return fmt.Errorf("ошибка обновления изображения позиции: %w", err)
	}

	return nil
}
