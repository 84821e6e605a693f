package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"pourhouse/internal/domain"
	"pourhouse/internal/repository"
	"pourhouse/internal/storage"
	"pourhouse/pkg/validator"
)

type MenuServiceImpl struct {
	categoryRepo repository.CategoryRepository
	itemRepo     repository.MenuItemRepository
	recipeRepo   repository.RecipeRepository
	fileStorage  storage.FileStorage
	logger       *zap.Logger
}

func NewMenuService(
	categoryRepo repository.CategoryRepository,
	itemRepo repository.MenuItemRepository,
	recipeRepo repository.RecipeRepository,
	fileStorage storage.FileStorage,
	logger *zap.Logger,
) *MenuServiceImpl {
	return &MenuServiceImpl{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		recipeRepo:   recipeRepo,
		fileStorage:  fileStorage,
		logger:       logger,
	}
}

func (s *MenuServiceImpl) CreateCategory(ctx context.Context, dto domain.CreateCategoryDTO) (int64, error) {
	slug := dto.Slug
	if slug == "" {
		slug = validator.Slugify(dto.Name)
	}
	if slug == "" {
		return 0, errors.New("не удалось построить slug из названия")
	}

	return s.categoryRepo.Create(ctx, dto, slug)
}

func (s *MenuServiceImpl) GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *MenuServiceImpl) UpdateCategory(ctx context.Context, id int64, dto domain.UpdateCategoryDTO) error {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if dto.Name != nil && dto.Slug == nil {
		slug := validator.Slugify(*dto.Name)
		dto.Slug = &slug
	}

	return s.categoryRepo.Update(ctx, id, dto)
}

func (s *MenuServiceImpl) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		return err
	}

	items, _, err := s.itemRepo.List(ctx, domain.MenuItemFilter{CategoryID: &id, Limit: 1})
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return errors.New("нельзя удалить категорию с позициями")
	}

	return s.categoryRepo.Delete(ctx, id)
}

func (s *MenuServiceImpl) ListCategories(ctx context.Context, onlyActive bool) ([]domain.Category, error) {
	return s.categoryRepo.List(ctx, onlyActive)
}

func (s *MenuServiceImpl) CreateItem(ctx context.Context, dto domain.CreateMenuItemDTO) (int64, error) {
	if _, err := s.categoryRepo.GetByID(ctx, dto.CategoryID); err != nil {
		return 0, err
	}

	slug := dto.Slug
	if slug == "" {
		slug = validator.Slugify(dto.Name)
	}
	if slug == "" {
		return 0, errors.New("не удалось построить slug из названия")
	}

	return s.itemRepo.Create(ctx, dto, slug)
}

func (s *MenuServiceImpl) GetItemByID(ctx context.Context, id int64) (*domain.MenuItem, error) {
	return s.itemRepo.GetByID(ctx, id)
}

func (s *MenuServiceImpl) UpdateItem(ctx context.Context, id int64, dto domain.UpdateMenuItemDTO) error {
	if _, err := s.itemRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if dto.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *dto.CategoryID); err != nil {
			return err
		}
	}

	if dto.Name != nil && dto.Slug == nil {
		slug := validator.Slugify(*dto.Name)
		dto.Slug = &slug
	}

	return s.itemRepo.Update(ctx, id, dto)
}

func (s *MenuServiceImpl) DeleteItem(ctx context.Context, id int64) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return err
	}

	if item.ImageURL != "" && s.fileStorage != nil {
		if err := s.fileStorage.DeleteFile(ctx, item.ImageURL); err != nil {
			s.logger.Warn("ошибка удаления изображения позиции", zap.Error(err))
		}
	}

	return nil
}

func (s *MenuServiceImpl) ListItems(ctx context.Context, filter domain.MenuItemFilter) ([]domain.MenuItem, int, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return s.itemRepo.List(ctx, filter)
}

func (s *MenuServiceImpl) UploadItemImage(ctx context.Context, id int64, data []byte, filename string) (string, error) {
	if s.fileStorage == nil {
		return "", errors.New("файловое хранилище не настроено")
	}

	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	imageURL, err := s.fileStorage.UploadFile(ctx, data, storage.PrefixMenu, filename)
	if err != nil {
		s.logger.Error("ошибка загрузки изображения", zap.Error(err))
		return "", errors.New("ошибка загрузки изображения")
	}

	if err := s.itemRepo.UpdateImage(ctx, id, imageURL); err != nil {
		return "", err
	}

	if item.ImageURL != "" {
		if err := s.fileStorage.DeleteFile(ctx, item.ImageURL); err != nil {
			s.logger.Warn("ошибка удаления старого изображения", zap.Error(err))
		}
	}

	return imageURL, nil
}

// PublicMenu собирает меню для публичной страницы: активные категории в
// заданном порядке, внутри каждой — только доступные позиции.
func (s *MenuServiceImpl) PublicMenu(ctx context.Context) ([]domain.MenuSection, error) {
	categories, err := s.categoryRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}

	available := true
	sections := make([]domain.MenuSection, 0, len(categories))
	for _, category := range categories {
		categoryID := category.ID
		items, _, err := s.itemRepo.List(ctx, domain.MenuItemFilter{
			CategoryID:  &categoryID,
			IsAvailable: &available,
			Limit:       200,
		})
		if err != nil {
			return nil, err
		}

		sections = append(sections, domain.MenuSection{
			Category: category,
			Items:    items,
		})
	}

	return sections, nil
}

func (s *MenuServiceImpl) FeaturedItems(ctx context.Context) ([]domain.MenuItem, error) {
	available := true
	featured := true
	items, _, err := s.itemRepo.List(ctx, domain.MenuItemFilter{
		IsAvailable: &available,
		IsFeatured:  &featured,
		Limit:       20,
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (s *MenuServiceImpl) CreateRecipe(ctx context.Context, menuItemID int64, dto domain.CreateRecipeDTO) (int64, error) {
	if _, err := s.itemRepo.GetByID(ctx, menuItemID); err != nil {
		return 0, err
	}

	if existing, err := s.recipeRepo.GetByMenuItemID(ctx, menuItemID); err == nil && existing != nil {
		return 0, errors.New("у позиции уже есть рецепт")
	}

	return s.recipeRepo.Create(ctx, menuItemID, dto)
}

func (s *MenuServiceImpl) GetRecipe(ctx context.Context, menuItemID int64) (*domain.Recipe, error) {
	return s.recipeRepo.GetByMenuItemID(ctx, menuItemID)
}

func (s *MenuServiceImpl) UpdateRecipe(ctx context.Context, menuItemID int64, dto domain.UpdateRecipeDTO) error {
	if _, err := s.recipeRepo.GetByMenuItemID(ctx, menuItemID); err != nil {
		return err
	}

	return s.recipeRepo.Update(ctx, menuItemID, dto)
}

func (s *MenuServiceImpl) DeleteRecipe(ctx context.Context, menuItemID int64) error {
	if _, err := s.recipeRepo.GetByMenuItemID(ctx, menuItemID); err != nil {
		return err
	}

	return s.recipeRepo.Delete(ctx, menuItemID)
}
