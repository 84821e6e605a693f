package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pourhouse/internal/domain"
)

// @Summary Мои смены
// @Description Смены авторизованного сотрудника за период
// @Tags Смены
// @Security ApiKeyAuth
// @Produce json
// @Param date_from query string false "Начало периода (YYYY-MM-DD)"
// @Param date_to query string false "Конец периода (YYYY-MM-DD)"
// @Success 200 {object} paginatedResponse "Смены"
// @Failure 404 {object} errorResponseBody "Профиль сотрудника не найден"
// @Router /shifts/me [get]
func (h *Handler) getMyShifts(c *gin.Context) {
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

	filter := parseShiftFilter(c)
	filter.EmployeeID = &employee.ID

	shifts, total, err := h.services.Shift.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("ошибка при получении смен", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка при получении смен")
		return
	}

	page := filter.Offset/filter.Limit + 1

	paginatedSuccessResponse(c, shifts, total, page, filter.Limit)
}

// @Summary Создание смены
// @Description Назначает смену сотруднику. Пересечение с другой сменой
// @Description того же сотрудника в тот же день отклоняется.
// @Tags Смены
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.CreateShiftDTO true "Данные смены"
// @Success 201 {object} successResponseBody "ID созданной смены"
// @Failure 400 {object} errorResponseBody "Ошибка валидации или пересечение смен"
// @Router /shifts [post]
func (h *Handler) createShift(c *gin.Context) {
	var input domain.CreateShiftDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Shift.Create(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("ошибка при создании смены", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Список смен
// @Tags Смены
// @Security ApiKeyAuth
// @Produce json
// @Param employee_id query int false "Фильтр по сотруднику"
// @Param date_from query string false "Начало периода (YYYY-MM-DD)"
// @Param date_to query string false "Конец периода (YYYY-MM-DD)"
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} paginatedResponse "Смены"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Router /shifts [get]
func (h *Handler) getShifts(c *gin.Context) {
	filter := parseShiftFilter(c)

	if employeeIDStr := c.Query("employee_id"); employeeIDStr != "" {
		employeeID, err := strconv.ParseInt(employeeIDStr, 10, 64)
		if err != nil {
			badRequestResponse(c, "некорректный ID сотрудника")
			return
		}
		filter.EmployeeID = &employeeID
	}

	shifts, total, err := h.services.Shift.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("ошибка при получении смен", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка при получении смен")
		return
	}

	page := filter.Offset/filter.Limit + 1

	paginatedSuccessResponse(c, shifts, total, page, filter.Limit)
}

// @Summary Смена по ID
// @Tags Смены
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID смены"
// @Success 200 {object} domain.Shift "Смена"
// @Failure 404 {object} errorResponseBody "Смена не найдена"
// @Router /shifts/{id} [get]
func (h *Handler) getShiftByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	shift, err := h.services.Shift.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, "смена не найдена")
		return
	}

	successResponse(c, http.StatusOK, shift)
}

// @Summary Обновление смены
// @Tags Смены
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID смены"
// @Param input body domain.UpdateShiftDTO true "Изменяемые поля"
// @Success 200 {object} successResponseBody "Смена обновлена"
// @Failure 400 {object} errorResponseBody "Ошибка валидации или пересечение смен"
// @Router /shifts/{id} [put]
func (h *Handler) updateShift(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	var input domain.UpdateShiftDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Shift.Update(c.Request.Context(), id, input); err != nil {
		h.logger.Error("ошибка при обновлении смены", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, nil)
}

// @Summary Удаление смены
// @Tags Смены
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID смены"
// @Success 204 {object} nil "Смена удалена"
// @Failure 404 {object} errorResponseBody "Смена не найдена"
// @Router /shifts/{id} [delete]
func (h *Handler) deleteShift(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	if err := h.services.Shift.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("ошибка при удалении смены", zap.Error(err))
		notFoundResponse(c, err.Error())
		return
	}

	noContentResponse(c)
}

func parseShiftFilter(c *gin.Context) domain.ShiftFilter {
	limit, offset := parseLimitOffset(c, 50)

	filter := domain.ShiftFilter{
		Limit:  limit,
		Offset: offset,
	}

	if dateFrom := c.Query("date_from"); dateFrom != "" {
		if parsed, err := time.Parse("2006-01-02", dateFrom); err == nil {
			filter.StartDate = &parsed
		}
	}

	if dateTo := c.Query("date_to"); dateTo != "" {
		if parsed, err := time.Parse("2006-01-02", dateTo); err == nil {
			filter.EndDate = &parsed
		}
	}

	return filter
}
