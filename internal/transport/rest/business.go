package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pourhouse/internal/domain"
)

const maxImageSize = 10 << 20 // 10 МБ

// @Summary Профиль заведения
// @Description Публичная информация: адрес, контакты, расписание, ссылки
// @Tags Заведение
// @Produce json
// @Success 200 {object} domain.BusinessInfo "Профиль заведения"
// @Failure 404 {object} errorResponseBody "Профиль не заполнен"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /business [get]
func (h *Handler) getBusinessInfo(c *gin.Context) {
	info, err := h.services.Business.Get(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFoundResponse(c, "профиль заведения не найден")
			return
		}
		h.logger.Error("ошибка при получении профиля заведения", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка при получении профиля заведения")
		return
	}

	successResponse(c, http.StatusOK, info)
}

// @Summary Статус "открыто/закрыто"
// @Description Текущий статус заведения с действующим на сегодня правилом
// @Tags Заведение
// @Produce json
// @Success 200 {object} hours.Evaluation "Статус на текущий момент"
// @Failure 404 {object} errorResponseBody "Профиль не заполнен"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /business/status [get]
func (h *Handler) getBusinessStatus(c *gin.Context) {
	status, err := h.services.Business.Status(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFoundResponse(c, "профиль заведения не найден")
			return
		}
		h.logger.Error("ошибка при вычислении статуса", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка при вычислении статуса")
		return
	}

	successResponse(c, http.StatusOK, status)
}

// @Summary Расписание на неделю
// @Description Таблица часов работы по дням недели и ближайшие исключения
// @Tags Заведение
// @Produce json
// @Success 200 {object} domain.WeekSchedule "Недельное расписание"
// @Failure 404 {object} errorResponseBody "Профиль не заполнен"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /business/hours [get]
func (h *Handler) getWeekSchedule(c *gin.Context) {
	schedule, err := h.services.Business.WeekSchedule(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			notFoundResponse(c, "профиль заведения не найден")
			return
		}
		h.logger.Error("ошибка при построении расписания", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "ошибка при построении расписания")
		return
	}

	successResponse(c, http.StatusOK, schedule)
}

// @Summary Обновление профиля заведения
// @Tags Заведение
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.UpdateBusinessInfoDTO true "Изменяемые поля"
// @Success 200 {object} successResponseBody "Профиль обновлён"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Router /business [put]
func (h *Handler) updateBusinessInfo(c *gin.Context) {
	var input domain.UpdateBusinessInfoDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Business.Update(c.Request.Context(), input); err != nil {
		h.logger.Error("ошибка при обновлении профиля заведения", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, nil)
}

// @Summary Обновление часов работы
// @Description Сохраняет недельное расписание и исключения. Конфигурация
// @Description проверяется целиком, при ошибке ничего не сохраняется.
// @Tags Заведение
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.UpdateHoursDTO true "Расписание и исключения"
// @Success 200 {object} successResponseBody "Расписание сохранено"
// @Failure 400 {object} errorResponseBody "Ошибка конфигурации расписания"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Router /business/hours [put]
func (h *Handler) updateHours(c *gin.Context) {
	var input domain.UpdateHoursDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Business.UpdateHours(c.Request.Context(), input); err != nil {
		h.logger.Warn("отклонена конфигурация расписания", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, nil)
}

// @Summary Загрузка обложки
// @Description Загружает изображение для главной страницы
// @Tags Заведение
// @Security ApiKeyAuth
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Файл изображения"
// @Success 200 {object} successResponseBody "URL загруженного изображения"
// @Failure 400 {object} errorResponseBody "Некорректный файл"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Router /business/hero [post]
func (h *Handler) uploadHeroImage(c *gin.Context) {
	data, filename, ok := readImageUpload(c)
	if !ok {
		return
	}

	imageURL, err := h.services.Business.UploadHeroImage(c.Request.Context(), data, filename)
	if err != nil {
		h.logger.Error("ошибка при загрузке обложки", zap.Error(err))
		badRequestResponse(c, err.Error())
		return
	}

	successResponse(c, http.StatusOK, map[string]interface{}{
		"image_url": imageURL,
	})
}

func readImageUpload(c *gin.Context) ([]byte, string, bool) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		badRequestResponse(c, "файл изображения не найден в запросе")
		return nil, "", false
	}

	if fileHeader.Size > maxImageSize {
		badRequestResponse(c, "файл слишком большой")
		return nil, "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		badRequestResponse(c, "не удалось открыть файл")
		return nil, "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		badRequestResponse(c, "не удалось прочитать файл")
		return nil, "", false
	}

	return data, fileHeader.Filename, true
}
