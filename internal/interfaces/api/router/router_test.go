package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"silentblock/internal/application/dto"
	"silentblock/internal/domain/entity"
	"silentblock/internal/interfaces/api/handler"
	appErrors "silentblock/internal/pkg/errors"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type stubAuthService struct{}

func (stubAuthService) Authenticate(_ context.Context, header string) (*entity.Principal, error) {
	if header == "" {
		return nil, appErrors.ErrMissingAuth
	}
	return &entity.Principal{ID: "u1", Email: "alice@example.com"}, nil
}

type stubBlockService struct{}

func (stubBlockService) CreateBlock(_ context.Context, _ *entity.Principal, _ dto.CreateBlockRequest) (string, error) {
	return "65a1b2c3d4e5f60718293a4b", nil
}

func (stubBlockService) ListBlocks(_ context.Context, _ string) ([]dto.BlockResponse, error) {
	return []dto.BlockResponse{}, nil
}

func newTestRouter() http.Handler {
	h := handler.NewBlockHandler(stubAuthService{}, stubBlockService{}, zerolog.Nop())
	return NewRouter(&Config{BlockHandler: h, Logger: zerolog.Nop()})
}

func TestRouter_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_MethodNotAllowedIsEmpty(t *testing.T) {
	for _, method := range []string{http.MethodPut, http.MethodDelete, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newTestRouter().ServeHTTP(rec, httptest.NewRequest(method, "/blocks", nil))

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
}

func TestRouter_MissingAuthThroughStack(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blocks", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"Missing auth"`)
}

func TestRouter_ListBlocksAuthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/blocks", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"blocks":[]}`, rec.Body.String())
}
