package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pourhouse/internal/domain"
)

// @Summary Мой профиль сотрудника
// @Tags Персонал
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} domain.Employee "Профиль сотрудника"
// @Failure 404 {object} errorResponseBody "Профиль не найден"
// @Router /employees/me [get]
func (h *Handler) getMyEmployeeProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	employee, err := h.services.Employee.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		notFoundResponse(c, "профиль сотрудника не найден")
		return
	}

	successResponse(c, http.StatusOK, employee)
}

// @Summary Создание сотрудника
// @Description Создаёт профиль сотрудника с автоматическим табельным номером
// @Tags Персонал
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.CreateEmployeeDTO true "Данные сотрудника"
// @Success 201 {object} successResponseBody "ID созданного сотрудника"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Router /employees [post]
func (h *Handler) createEmployee(c *gin.Context) {
	var input domain.CreateEmployeeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Employee.Create(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("ошибка при создании сотрудника", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Список сотрудников
// @Tags Персонал
// @Security ApiKeyAuth
// @Produce json
// @Param position query string false "Фильтр по должности"
// @Param status query string false "Фильтр по статусу занятости"
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} paginatedResponse "Сотрудники"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Router /employees [get]
func (h *Handler) getEmployees(c *gin.Context) {
	limit, offset := parseLimitOffset(c, 20)

	filter := domain.EmployeeFilter{
		Limit:  limit,
		Offset: offset,
	}

	if positionStr := c.Query("position"); positionStr != "" {
		position := domain.EmployeePosition(positionStr)
		filter.Position = &position
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status := domain.EmploymentStatus(statusStr)
		filter.Status = &status
	}

	employees, total, err := h.services.Employee.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("ошибка при получении списка сотрудников", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка при получении списка сотрудников")
		return
	}

	page := offset/limit + 1

	paginatedSuccessResponse(c, employees, total, page, limit)
}

// @Summary Сотрудник по ID
// @Tags Персонал
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID сотрудника"
// @Success 200 {object} domain.Employee "Профиль сотрудника"
// @Failure 404 {object} errorResponseBody "Сотрудник не найден"
// @Router /employees/{id} [get]
func (h *Handler) getEmployeeByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	employee, err := h.services.Employee.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, "сотрудник не найден")
		return
	}

	successResponse(c, http.StatusOK, employee)
}

// @Summary Обновление сотрудника
// @Tags Персонал
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID сотрудника"
// @Param input body domain.UpdateEmployeeDTO true "Изменяемые поля"
// @Success 200 {object} successResponseBody "Сотрудник обновлён"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /employees/{id} [put]
func (h *Handler) updateEmployee(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	var input domain.UpdateEmployeeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Employee.Update(c.Request.Context(), id, input); err != nil {
		h.logger.Error("ошибка при обновлении сотрудника", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, nil)
}

// @Summary Удаление сотрудника
// @Tags Персонал
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID сотрудника"
// @Success 204 {object} nil "Сотрудник удалён"
// @Failure 404 {object} errorResponseBody "Сотрудник не найден"
// @Router /employees/{id} [delete]
func (h *Handler) deleteEmployee(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	if err := h.services.Employee.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("ошибка при удалении сотрудника", zap.Error(err))
		notFoundResponse(c, err.Error())
		return
	}

	noContentResponse(c)
}
