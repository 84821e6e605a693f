package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pourhouse/internal/domain"
)

// @Summary Публичное меню
// @Description Активные категории с доступными позициями
// @Tags Меню
// @Produce json
// @Success 200 {array} domain.MenuSection "Секции меню"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /menu [get]
func (h *Handler) getPublicMenu(c *gin.Context) {
	sections, err := h.services.Menu.PublicMenu(c.Request.Context())
	if err != nil {
		h.logger.Error("ошибка при получении меню", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка при получении меню")
		return
	}

	successResponse(c, http.StatusOK, sections)
}

// @Summary Рекомендуемые позиции
// @Tags Меню
// @Produce json
// @Success 200 {array} domain.MenuItem "Рекомендуемые позиции"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /menu/featured [get]
func (h *Handler) getFeaturedItems(c *gin.Context) {
	items, err := h.services.Menu.FeaturedItems(c.Request.Context())
	if err != nil {
		h.logger.Error("ошибка при получении рекомендуемых позиций", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка при получении рекомендуемых позиций")
		return
	}

	successResponse(c, http.StatusOK, items)
}

// @Summary Список категорий
// @Tags Меню
// @Produce json
// @Param all query bool false "Включая неактивные (для админки)"
// @Success 200 {array} domain.Category "Категории"
// @Router /menu/categories [get]
func (h *Handler) getCategories(c *gin.Context) {
	onlyActive := c.Query("all") != "true"

	categories, err := h.services.Menu.ListCategories(c.Request.Context(), onlyActive)
	if err != nil {
		h.logger.Error("ошибка при получении категорий", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка при получении категорий")
		return
	}

	successResponse(c, http.StatusOK, categories)
}

// @Summary Создание категории
// @Tags Меню
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.CreateCategoryDTO true "Данные категории"
// @Success 201 {object} successResponseBody "ID созданной категории"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /menu/categories [post]
func (h *Handler) createCategory(c *gin.Context) {
	var input domain.CreateCategoryDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Menu.CreateCategory(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("ошибка при создании категории", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Обновление категории
// @Tags Меню
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID категории"
// @Param input body domain.UpdateCategoryDTO true "Изменяемые поля"
// @Success 200 {object} successResponseBody "Категория обновлена"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /menu/categories/{id} [put]
func (h *Handler) updateCategory(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	var input domain.UpdateCategoryDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Menu.UpdateCategory(c.Request.Context(), id, input); err != nil {
		h.logger.Error("ошибка при обновлении категории", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, nil)
}

// @Summary Удаление категории
// @Description Категорию с позициями удалить нельзя
// @Tags Меню
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID категории"
// @Success 204 {object} nil "Категория удалена"
// @Failure 400 {object} errorResponseBody "Категория не пуста"
// @Router /menu/categories/{id} [delete]
func (h *Handler) deleteCategory(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	if err := h.services.Menu.DeleteCategory(c.Request.Context(), id); err != nil {
		h.logger.Error("ошибка при удалении категории", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	noContentResponse(c)
}

// @Summary Список позиций меню
// @Tags Меню
// @Produce json
// @Param category_id query int false "Фильтр по категории"
// @Param available query bool false "Только доступные"
// @Param featured query bool false "Только рекомендуемые"
// @Param q query string false "Поиск по названию и описанию"
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} paginatedResponse "Позиции меню"
// @Router /menu/items [get]
func (h *Handler) getMenuItems(c *gin.Context) {
	limit, offset := parseLimitOffset(c, 20)

	filter := domain.MenuItemFilter{
		Limit:  limit,
		Offset: offset,
	}

	if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
		categoryID, err := strconv.ParseInt(categoryIDStr, 10, 64)
		if err != nil {
			badRequestResponse(c, "некорректный ID категории")
			return
		}
		filter.CategoryID = &categoryID
	}

	if availableStr := c.Query("available"); availableStr != "" {
		available := availableStr == "true"
		filter.IsAvailable = &available
	}

	if featuredStr := c.Query("featured"); featuredStr != "" {
		featured := featuredStr == "true"
		filter.IsFeatured = &featured
	}

	if q := c.Query("q"); q != "" {
		filter.SearchTerm = &q
	}

	items, total, err := h.services.Menu.ListItems(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("ошибка при получении позиций меню", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка при получении позиций меню")
		return
	}

	page := offset/limit + 1

	paginatedSuccessResponse(c, items, total, page, limit)
}

// @Summary Позиция меню по ID
// @Tags Меню
// @Produce json
// @Param id path int true "ID позиции"
// @Success 200 {object} domain.MenuItem "Позиция меню"
// @Failure 404 {object} errorResponseBody "Позиция не найдена"
// @Router /menu/items/{id} [get]
func (h *Handler) getMenuItemByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	item, err := h.services.Menu.GetItemByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, "позиция меню не найдена")
		return
	}

	successResponse(c, http.StatusOK, item)
}

// @Summary Создание позиции меню
// @Tags Меню
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.CreateMenuItemDTO true "Данные позиции"
// @Success 201 {object} successResponseBody "ID созданной позиции"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /menu/items [post]
func (h *Handler) createMenuItem(c *gin.Context) {
	var input domain.CreateMenuItemDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Menu.CreateItem(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("ошибка при создании позиции меню", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Обновление позиции меню
// @Tags Меню
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID позиции"
// @Param input body domain.UpdateMenuItemDTO true "Изменяемые поля"
// @Success 200 {object} successResponseBody "Позиция обновлена"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /menu/items/{id} [put]
func (h *Handler) updateMenuItem(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	var input domain.UpdateMenuItemDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Menu.UpdateItem(c.Request.Context(), id, input); err != nil {
		h.logger.Error("ошибка при обновлении позиции меню", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, nil)
}

// @Summary Удаление позиции меню
// @Tags Меню
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID позиции"
// @Success 204 {object} nil "Позиция удалена"
// @Failure 404 {object} errorResponseBody "Позиция не найдена"
// @Router /menu/items/{id} [delete]
func (h *Handler) deleteMenuItem(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	if err := h.services.Menu.DeleteItem(c.Request.Context(), id); err != nil {
		h.logger.Error("ошибка при удалении позиции меню", zap.Error(err))
		notFoundResponse(c, err.Error())
		return
	}

	noContentResponse(c)
}

// @Summary Загрузка изображения позиции
// @Tags Меню
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "ID позиции"
// @Param image formData file true "Файл изображения"
// @Success 200 {object} successResponseBody "URL загруженного изображения"
// @Failure 400 {object} errorResponseBody "Некорректный файл"
// @Router /menu/items/{id}/image [post]
func (h *Handler) uploadMenuItemImage(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	data, filename, ok := readImageUpload(c)
	if !ok {
		return
	}

	imageURL, err := h.services.Menu.UploadItemImage(c.Request.Context(), id, data, filename)
	if err != nil {
		h.logger.Error("ошибка при загрузке изображения позиции", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, map[string]interface{}{
		"image_url": imageURL,
	})
}

// @Summary Рецепт позиции
// @Description Внутренняя карточка приготовления, доступна персоналу
// @Tags Рецепты
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID позиции меню"
// @Success 200 {object} domain.Recipe "Рецепт"
// @Failure 404 {object} errorResponseBody "Рецепт не найден"
// @Router /menu/items/{id}/recipe [get]
func (h *Handler) getRecipe(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	recipe, err := h.services.Menu.GetRecipe(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, "рецепт не найден")
		return
	}

	successResponse(c, http.StatusOK, recipe)
}

// @Summary Создание рецепта
// @Tags Рецепты
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID позиции меню"
// @Param input body domain.CreateRecipeDTO true "Данные рецепта"
// @Success 201 {object} successResponseBody "ID созданного рецепта"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /menu/items/{id}/recipe [post]
func (h *Handler) createRecipe(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	var input domain.CreateRecipeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	recipeID, err := h.services.Menu.CreateRecipe(c.Request.Context(), id, input)
	if err != nil {
		h.logger.Error("ошибка при создании рецепта", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": recipeID,
	})
}

// @Summary Обновление рецепта
// @Tags Рецепты
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID позиции меню"
// @Param input body domain.UpdateRecipeDTO true "Изменяемые поля"
// @Success 200 {object} successResponseBody "Рецепт обновлён"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /menu/items/{id}/recipe [put]
func (h *Handler) updateRecipe(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	var input domain.UpdateRecipeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Menu.UpdateRecipe(c.Request.Context(), id, input); err != nil {
		h.logger.Error("ошибка при обновлении рецепта", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, nil)
}

// @Summary Удаление рецепта
// @Tags Рецепты
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID позиции меню"
// @Success 204 {object} nil "Рецепт удалён"
// @Failure 404 {object} errorResponseBody "Рецепт не найден"
// @Router /menu/items/{id}/recipe [delete]
func (h *Handler) deleteRecipe(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	if err := h.services.Menu.DeleteRecipe(c.Request.Context(), id); err != nil {
		h.logger.Error("ошибка при удалении рецепта", zap.Error(err))
		notFoundResponse(c, err.Error())
		return
	}

	noContentResponse(c)
}
