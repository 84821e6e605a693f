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

type RecipeRepo struct {
	db *pgxpool.Pool
}

func NewRecipeRepository(db *pgxpool.Pool) *RecipeRepo {
	return &RecipeRepo{
		db: db,
	}
}

func (r *RecipeRepo) Create(ctx context.Context, menuItemID int64, dto domain.CreateRecipeDTO) (int64, error) {
	query := `
		INSERT INTO recipes (menu_item_id, ingredients, instructions, prep_time_minutes, difficulty,
			equipment, yield_quantity, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id
	`

	difficulty := dto.Difficulty
	if difficulty == "" {
		difficulty = domain.RecipeDifficultyEasy
	}

	yieldQuantity := dto.YieldQuantity
	if yieldQuantity == "" {
		yieldQuantity = "1 serving"
	}

	now := time.Now()
	var id int64
	err := r.db.QueryRow(ctx, query,
		menuItemID,
		dto.Ingredients,
		dto.Instructions,
		dto.PrepTimeMinutes,
		difficulty,
		dto.Equipment,
		yieldQuantity,
		dto.Notes,
		now,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("ошибка создания рецепта: %w", err)
	}

	return id, nil
}

func (r *RecipeRepo) GetByMenuItemID(ctx context.Context, menuItemID int64) (*domain.Recipe, error) {
	query := `
		SELECT id, menu_item_id, ingredients, instructions, prep_time_minutes, difficulty,
		       equipment, yield_quantity, notes, created_at, updated_at
		FROM recipes
		WHERE menu_item_id = $1
	`

	var recipe domain.Recipe
	err := r.db.QueryRow(ctx, query, menuItemID).Scan(
		&recipe.ID,
		&recipe.MenuItemID,
		&recipe.Ingredients,
		&recipe.Instructions,
		&recipe.PrepTimeMinutes,
		&recipe.Difficulty,
		&recipe.Equipment,
		&recipe.YieldQuantity,
		&recipe.Notes,
		&recipe.CreatedAt,
		&recipe.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("рецепт для позиции %d не найден", menuItemID)
		}
		return nil, fmt.Errorf("ошибка получения рецепта: %w", err)
	}

	return &recipe, nil
}

func (r *RecipeRepo) Update(ctx context.Context, menuItemID int64, dto domain.UpdateRecipeDTO) error {
	setValues := make([]string, 0)
	args := make([]interface{}, 0)
	argID := 1

	if dto.Ingredients != nil {
		setValues = append(setValues, fmt.Sprintf("ingredients = $%d", argID))
		args = append(args, *dto.Ingredients)
		argID++
	}

	if dto.Instructions != nil {
		setValues = append(setValues, fmt.Sprintf("instructions = $%d", argID))
		args = append(args, *dto.Instructions)
		argID++
	}

	if dto.PrepTimeMinutes != nil {
		setValues = append(setValues, fmt.Sprintf("prep_time_minutes = $%d", argID))
		args = append(args, *dto.PrepTimeMinutes)
		argID++
	}

	if dto.Difficulty != nil {
		setValues = append(setValues, fmt.Sprintf("difficulty = $%d", argID))
		args = append(args, *dto.Difficulty)
		argID++
	}

	if dto.Equipment != nil {
		setValues = append(setValues, fmt.Sprintf("equipment = $%d", argID))
		args = append(args, *dto.Equipment)
		argID++
	}

	if dto.YieldQuantity != nil {
		setValues = append(setValues, fmt.Sprintf("yield_quantity = $%d", argID))
		args = append(args, *dto.YieldQuantity)
		argID++
	}

	if dto.Notes != nil {
		setValues = append(setValues, fmt.Sprintf("notes = $%d", argID))
		args = append(args, *dto.Notes)
		argID++
	}

	setValues = append(setValues, fmt.Sprintf("updated_at = $%d", argID))
	args = append(args, time.Now())
	argID++

	args = append(args, menuItemID)

	query := fmt.Sprintf(`
		UPDATE recipes
		SET %s
		WHERE menu_item_id = $%d
	`, strings.Join(setValues, ", "), argID)

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("ошибка обновления рецепта: %w", err)
	}

	return nil
}

func (r *RecipeRepo) Delete(ctx context.Context, menuItemID int64) error {
	query := `DELETE FROM recipes WHERE menu_item_id = $1`

	_, err := r.db.Exec(ctx, query, menuItemID)
	if err != nil {
		return fmt.Errorf("ошибка удаления рецепта: %w", err)
	}

	return nil
}
