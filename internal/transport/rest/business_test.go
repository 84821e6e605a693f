package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"pourhouse/internal/domain"
	"pourhouse/internal/service"
	"pourhouse/pkg/hours"
)

type fakeBusinessService struct {
	err error
}

func (s *fakeBusinessService) Get(ctx context.Context) (*domain.BusinessInfo, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.BusinessInfo{Name: "White Raven Pourhouse"}, nil
}

func (s *fakeBusinessService) Update(ctx context.Context, dto domain.UpdateBusinessInfoDTO) error {
	return s.err
}

func (s *fakeBusinessService) UpdateHours(ctx context.Context, dto domain.UpdateHoursDTO) error {
	return s.err
}

func (s *fakeBusinessService) Status(ctx context.Context) (*hours.Evaluation, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &hours.Evaluation{Label: hours.LabelClosed}, nil
}

func (s *fakeBusinessService) WeekSchedule(ctx context.Context) (*domain.WeekSchedule, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.WeekSchedule{}, nil
}

func (s *fakeBusinessService) UploadHeroImage(ctx context.Context, data []byte, filename string) (string, error) {
	return "", s.err
}

func newBusinessTestRouter(t *testing.T, svc service.BusinessService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewHandler(&service.Services{Business: svc}, zap.NewNop(), nil, nil)
	router := gin.New()
	handler.InitRoutes(router)
	return router
}

var publicBusinessPaths = []string{
	"/api/v1/business/",
	"/api/v1/business/status",
	"/api/v1/business/hours",
}

// Пустая база не должна ронять публичные страницы пятисоткой.
func TestPublicBusinessEndpointsMissingProfile(t *testing.T) {
	svc := &fakeBusinessService{
		err: fmt.Errorf("профиль заведения не найден: %w", domain.ErrNotFound),
	}
	router := newBusinessTestRouter(t, svc)

	for _, path := range publicBusinessPaths {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestPublicBusinessEndpointsStorageFailure(t *testing.T) {
	svc := &fakeBusinessService{err: errors.New("ошибка получения профиля заведения")}
	router := newBusinessTestRouter(t, svc)

	for _, path := range publicBusinessPaths {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code, path)
	}
}

func TestPublicBusinessStatusOK(t *testing.T) {
	router := newBusinessTestRouter(t, &fakeBusinessService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/business/status", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), hours.LabelClosed)
}
