package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pourhouse/internal/domain"
)

type fakeCategoryRepo struct {
	categories  map[int64]*domain.Category
	createdSlug string
	deleted     []int64
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[int64]*domain.Category)}
}

func (r *fakeCategoryRepo) Create(ctx context.Context, dto domain.CreateCategoryDTO, slug string) (int64, error) {
	r.createdSlug = slug
	return 1, nil
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, errors.New("категория не найдена")
	}
	return category, nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, id int64, dto domain.UpdateCategoryDTO) error {
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id int64) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeCategoryRepo) List(ctx context.Context, onlyActive bool) ([]domain.Category, error) {
	var result []domain.Category
	for _, category := range r.categories {
		if onlyActive && !category.IsActive {
			continue
		}
		result = append(result, *category)
	}
	return result, nil
}

type fakeMenuItemRepo struct {
	items       map[int64]*domain.MenuItem
	createdSlug string
}

func newFakeMenuItemRepo() *fakeMenuItemRepo {
	return &fakeMenuItemRepo{items: make(map[int64]*domain.MenuItem)}
}

func (r *fakeMenuItemRepo) Create(ctx context.Context, dto domain.CreateMenuItemDTO, slug string) (int64, error) {
	r.createdSlug = slug
	return 1, nil
}

func (r *fakeMenuItemRepo) GetByID(ctx context.Context, id int64) (*domain.MenuItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, errors.New("позиция не найдена")
	}
	return item, nil
}

func (r *fakeMenuItemRepo) Update(ctx context.Context, id int64, dto domain.UpdateMenuItemDTO) error {
	return nil
}

func (r *fakeMenuItemRepo) Delete(ctx context.Context, id int64) error {
	delete(r.items, id)
	return nil
}

func (r *fakeMenuItemRepo) List(ctx context.Context, filter domain.MenuItemFilter) ([]domain.MenuItem, int, error) {
	var result []domain.MenuItem
	for _, item := range r.items {
		if filter.CategoryID != nil && item.CategoryID != *filter.CategoryID {
			continue
		}
		if filter.IsAvailable != nil && item.IsAvailable != *filter.IsAvailable {
			continue
		}
		if filter.IsFeatured != nil && item.IsFeatured != *filter.IsFeatured {
			continue
		}
		result = append(result, *item)
	}
	return result, len(result), nil
}

func (r *fakeMenuItemRepo) UpdateImage(ctx context.Context, id int64, imageURL string) error {
	return nil
}

type fakeRecipeRepo struct {
	recipes map[int64]*domain.Recipe
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{recipes: make(map[int64]*domain.Recipe)}
}

func (r *fakeRecipeRepo) Create(ctx context.Context, menuItemID int64, dto domain.CreateRecipeDTO) (int64, error) {
	r.recipes[menuItemID] = &domain.Recipe{MenuItemID: menuItemID}
	return 1, nil
}

func (r *fakeRecipeRepo) GetByMenuItemID(ctx context.Context, menuItemID int64) (*domain.Recipe, error) {
	recipe, ok := r.recipes[menuItemID]
	if !ok {
		return nil, errors.New("рецепт не найден")
	}
	return recipe, nil
}

func (r *fakeRecipeRepo) Update(ctx context.Context, menuItemID int64, dto domain.UpdateRecipeDTO) error {
	return nil
}

func (r *fakeRecipeRepo) Delete(ctx context.Context, menuItemID int64) error {
	delete(r.recipes, menuItemID)
	return nil
}

func newMenuService(categories *fakeCategoryRepo, items *fakeMenuItemRepo, recipes *fakeRecipeRepo) *MenuServiceImpl {
	return NewMenuService(categories, items, recipes, nil, zap.NewNop())
}

func TestMenuServiceCreateCategorySlug(t *testing.T) {
	categories := newFakeCategoryRepo()
	svc := newMenuService(categories, newFakeMenuItemRepo(), newFakeRecipeRepo())

	_, err := svc.CreateCategory(context.Background(), domain.CreateCategoryDTO{
		Name: "Espresso & Drip",
	})
	require.NoError(t, err)
	assert.Equal(t, "espresso-drip", categories.createdSlug)
}

func TestMenuServiceCreateCategoryRejectsEmptySlug(t *testing.T) {
	svc := newMenuService(newFakeCategoryRepo(), newFakeMenuItemRepo(), newFakeRecipeRepo())

	_, err := svc.CreateCategory(context.Background(), domain.CreateCategoryDTO{
		Name: "!!!",
	})
	require.Error(t, err)
}

func TestMenuServiceDeleteCategoryWithItems(t *testing.T) {
	categories := newFakeCategoryRepo()
	categories.categories[1] = &domain.Category{ID: 1, Name: "Drinks", IsActive: true}

	items := newFakeMenuItemRepo()
	items.items[10] = &domain.MenuItem{ID: 10, CategoryID: 1, IsAvailable: true}

	svc := newMenuService(categories, items, newFakeRecipeRepo())

	err := svc.DeleteCategory(context.Background(), 1)
	require.Error(t, err)
	assert.Empty(t, categories.deleted)

	// После удаления последней позиции категория удаляется
	delete(items.items, 10)
	require.NoError(t, svc.DeleteCategory(context.Background(), 1))
	assert.Equal(t, []int64{1}, categories.deleted)
}

func TestMenuServicePublicMenuSkipsHidden(t *testing.T) {
	categories := newFakeCategoryRepo()
	categories.categories[1] = &domain.Category{ID: 1, Name: "Drinks", IsActive: true}
	categories.categories[2] = &domain.Category{ID: 2, Name: "Seasonal", IsActive: false}

	items := newFakeMenuItemRepo()
	items.items[10] = &domain.MenuItem{ID: 10, CategoryID: 1, IsAvailable: true}
	items.items[11] = &domain.MenuItem{ID: 11, CategoryID: 1, IsAvailable: false}

	svc := newMenuService(categories, items, newFakeRecipeRepo())

	sections, err := svc.PublicMenu(context.Background())
	require.NoError(t, err)

	require.Len(t, sections, 1)
	assert.Equal(t, "Drinks", sections[0].Category.Name)
	require.Len(t, sections[0].Items, 1)
	assert.Equal(t, int64(10), sections[0].Items[0].ID)
}

func TestMenuServiceCreateRecipeRejectsDuplicate(t *testing.T) {
	items := newFakeMenuItemRepo()
	items.items[10] = &domain.MenuItem{ID: 10, CategoryID: 1}

	recipes := newFakeRecipeRepo()
	svc := newMenuService(newFakeCategoryRepo(), items, recipes)

	_, err := svc.CreateRecipe(context.Background(), 10, domain.CreateRecipeDTO{
		Ingredients:  "2 shots espresso, 6 oz steamed milk",
		Instructions: "Pull shots, steam milk, pour.",
	})
	require.NoError(t, err)

	_, err = svc.CreateRecipe(context.Background(), 10, domain.CreateRecipeDTO{
		Ingredients:  "something else",
		Instructions: "again",
	})
	require.Error(t, err)
}
