package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pourhouse/internal/domain"
	"pourhouse/internal/service"
)

// @Summary Отправка обращения
// @Description Принимает сообщение с публичной формы обратной связи.
// @Description Не более трёх обращений в час с одного адреса.
// @Tags Обратная связь
// @Accept json
// @Produce json
// @Param input body domain.CreateContactSubmissionDTO true "Данные обращения"
// @Success 201 {object} successResponseBody "ID принятого обращения"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 429 {object} errorResponseBody "Превышен лимит обращений"
// @Router /contact [post]
func (h *Handler) submitContact(c *gin.Context) {
	var input domain.CreateContactSubmissionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Contact.Submit(c.Request.Context(), input, c.ClientIP())
	if err != nil {
		if errors.Is(err, service.ErrRateLimited) {
			errorResponse(c, http.StatusTooManyRequests, err.Error())
			return
		}
		h.logger.Error("ошибка при приёме обращения", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Список обращений
// @Tags Обратная связь
// @Security ApiKeyAuth
// @Produce json
// @Param responded query bool false "Фильтр по признаку ответа"
// @Param subject query string false "Фильтр по теме"
// @Param date_from query string false "Начало периода (YYYY-MM-DD)"
// @Param date_to query string false "Конец периода (YYYY-MM-DD)"
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} paginatedResponse "Обращения"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Router /contact [get]
func (h *Handler) getContactSubmissions(c *gin.Context) {
	limit, offset := parseLimitOffset(c, 20)

	filter := domain.ContactFilter{
		Limit:  limit,
		Offset: offset,
	}

	if respondedStr := c.Query("responded"); respondedStr != "" {
		responded := respondedStr == "true"
		filter.Responded = &responded
	}

	if subjectStr := c.Query("subject"); subjectStr != "" {
		subject := domain.ContactSubject(subjectStr)
		filter.Subject = &subject
	}

	if dateFrom := c.Query("date_from"); dateFrom != "" {
		if parsed, err := time.Parse("2006-01-02", dateFrom); err == nil {
			filter.StartDate = &parsed
		}
	}

	if dateTo := c.Query("date_to"); dateTo != "" {
		if parsed, err := time.Parse("2006-01-02", dateTo); err == nil {
			parsed = parsed.Add(24*time.Hour - time.Second)
			filter.EndDate = &parsed
		}
	}

	submissions, total, err := h.services.Contact.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("ошибка при получении обращений", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка при получении обращений")
		return
	}

	page := offset/limit + 1

	paginatedSuccessResponse(c, submissions, total, page, limit)
}

// @Summary Обращение по ID
// @Tags Обратная связь
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID обращения"
// @Success 200 {object} domain.ContactSubmission "Обращение"
// @Failure 404 {object} errorResponseBody "Обращение не найдено"
// @Router /contact/{id} [get]
func (h *Handler) getContactSubmissionByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	submission, err := h.services.Contact.GetByID(c.Request.Context(), id)
	if err != nil {
		notFoundResponse(c, "обращение не найдено")
		return
	}

	successResponse(c, http.StatusOK, submission)
}

// @Summary Отметка об ответе
// @Description Помечает обращение как отвеченное и сохраняет заметки
// @Tags Обратная связь
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID обращения"
// @Param input body domain.RespondContactDTO true "Отметка и заметки"
// @Success 200 {object} successResponseBody "Обращение обновлено"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /contact/{id}/respond [put]
func (h *Handler) respondContactSubmission(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	var input domain.RespondContactDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Contact.Respond(c.Request.Context(), id, input); err != nil {
		h.logger.Error("ошибка при обновлении обращения", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, nil)
}

// @Summary Удаление обращения
// @Tags Обратная связь
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID обращения"
// @Success 204 {object} nil "Обращение удалено"
// @Failure 404 {object} errorResponseBody "Обращение не найдено"
// @Router /contact/{id} [delete]
func (h *Handler) deleteContactSubmission(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "некорректный ID")
		return
	}

	if err := h.services.Contact.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("ошибка при удалении обращения", zap.Error(err))
		notFoundResponse(c, err.Error())
		return
	}

	noContentResponse(c)
}
