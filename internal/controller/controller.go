package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/traitlab/darkmirror/internal/apperr"
	"github.com/traitlab/darkmirror/internal/dto"
)

// RespondError writes a service error as the structured JSON failure body.
// Domain errors carry their own status mapping; anything else is a 500 with
// a generic message so internals never leak to clients.
func RespondError(ctx *gin.Context, err error) {
	if e, ok := apperr.As(err); ok {
		ctx.JSON(e.HTTPStatus(), dto.NewErrorResponse(string(e.Code), e.Message))
		return
	}
	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal_error", "internal server error"))
}

// RespondBindError writes a 400 for request bodies that fail binding.
func RespondBindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid_request", err.Error()))
}
