package handler

import (
	"errors"
	"net/http"

	"silentblock/internal/application/dto"
	"silentblock/internal/application/service"
	appErrors "silentblock/internal/pkg/errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// BlockHandler handles the /blocks resource.
type BlockHandler struct {
	authService  service.AuthService
	blockService service.BlockService
	log          zerolog.Logger
}

// NewBlockHandler creates a new BlockHandler.
func NewBlockHandler(authService service.AuthService, blockService service.BlockService, log zerolog.Logger) *BlockHandler {
	return &BlockHandler{
		authService:  authService,
		blockService: blockService,
		log:          log,
	}
}

// CreateBlock handles POST /blocks.
func (h *BlockHandler) CreateBlock(c echo.Context) error {
	ctx := c.Request().Context()

	principal, err := h.authService.Authenticate(ctx, c.Request().Header.Get(echo.HeaderAuthorization))
	if err != nil {
		return h.replyAuthError(c, err)
	}

	var req dto.CreateBlockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid body",
			Message: "Request body must be valid JSON",
		})
	}

	blockID, err := h.blockService.CreateBlock(ctx, principal, req)
	if err != nil {
		switch {
		case errors.Is(err, appErrors.ErrStartTimeRequired), errors.Is(err, appErrors.ErrInvalidStartTime):
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "start_time required",
				Message: err.Error(),
			})
		case errors.Is(err, appErrors.ErrDatabaseOperation):
			return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:   "Database error",
				Message: "Failed to create block",
			})
		default:
			return err
		}
	}

	return c.JSON(http.StatusCreated, dto.CreateBlockResponse{OK: true, ID: blockID})
}

// ListBlocks handles GET /blocks. The user_id query parameter, when present,
// overrides the authenticated principal's id.
func (h *BlockHandler) ListBlocks(c echo.Context) error {
	ctx := c.Request().Context()

	principal, err := h.authService.Authenticate(ctx, c.Request().Header.Get(echo.HeaderAuthorization))
	if err != nil {
		return h.replyAuthError(c, err)
	}

	userID := c.QueryParam("user_id")
	if userID == "" {
		userID = principal.ID
	}

	blocks, err := h.blockService.ListBlocks(ctx, userID)
	if err != nil {
		if errors.Is(err, appErrors.ErrDatabaseOperation) {
			return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:   "Database error",
				Message: "Failed to fetch blocks from database",
			})
		}
		return err
	}

	return c.JSON(http.StatusOK, dto.ListBlocksResponse{Blocks: blocks})
}

func (h *BlockHandler) replyAuthError(c echo.Context, err error) error {
	resp := dto.ErrorResponse{Error: "Invalid token", Message: err.Error()}
	switch {
	case errors.Is(err, appErrors.ErrMissingAuth):
		resp = dto.ErrorResponse{Error: "Missing auth", Message: "Authorization header is required"}
	case errors.Is(err, appErrors.ErrMalformedAuth):
		resp = dto.ErrorResponse{Error: "Invalid auth format", Message: "Bearer token is required"}
	}
	return c.JSON(http.StatusUnauthorized, resp)
}
