package user

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/traitlab/darkmirror/internal/controller"
	"github.com/traitlab/darkmirror/internal/dto"
	"github.com/traitlab/darkmirror/internal/export"
	"github.com/traitlab/darkmirror/internal/middleware"
	"github.com/traitlab/darkmirror/internal/service"
)

type ResultController struct {
	submissionService service.SubmissionService
}

func NewResultController(submissionService service.SubmissionService) *ResultController {
	return &ResultController{submissionService: submissionService}
}

// SubmitResult godoc
// @Summary Submit a completed assessment run
// @Description Persists the raw answers and the computed per-trait aggregates as one atomic unit. A failed write stores nothing.
// @Tags Results
// @Accept json
// @Produce json
// @Param assessment_id path string true "Assessment ID"
// @Param submission body dto.ResultSubmitDTO true "The complete answer set"
// @Success 201 {object} dto.ResultDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Empty answer set or out-of-scale value"
// @Failure 401 {object} dto.ErrorResponse "Missing or expired session token"
// @Failure 404 {object} dto.ErrorResponse "Unknown assessment"
// @Failure 500 {object} dto.ErrorResponse "Persistence failure, fully rolled back"
// @Security BearerAuth
// @Router /assessments/{assessment_id}/results [post]
func (c *ResultController) SubmitResult(ctx *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("unauthorized", "missing session"))
		return
	}
	assessmentID := ctx.Param("assessment_id")

	var req dto.ResultSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}

	log.Info().
		Uint("userID", claims.UserID).
		Str("assessmentID", assessmentID).
		Int("answerCount", len(req.Answers)).
		Msg("Received submission")

	detail, err := c.submissionService.SubmitResult(claims.UserID, assessmentID, req)
	if err != nil {
		log.Warn().Err(err).Str("assessmentID", assessmentID).Msg("SubmitResult: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, detail)
}

// GetUserResults godoc
// @Summary List a user's historical results
// @Description Returns the user's submissions newest first. Callers may only read their own history unless admin.
// @Tags Results
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} dto.ResultSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid user id"
// @Failure 401 {object} dto.ErrorResponse "Not your results"
// @Security BearerAuth
// @Router /users/{user_id}/results [get]
func (c *ResultController) GetUserResults(ctx *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("unauthorized", "missing session"))
		return
	}

	userID, err := strconv.ParseUint(ctx.Param("user_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid_request", "invalid user id"))
		return
	}

	summaries, err := c.submissionService.GetUserResults(claims.UserID, claims.IsAdmin, uint(userID))
	if err != nil {
		log.Warn().Err(err).Uint64("userID", userID).Msg("GetUserResults: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}

// GetResultDetails godoc
// @Summary Get one submission with answers and trait breakdown
// @Tags Results
// @Produce json
// @Param result_id path int true "Result ID"
// @Success 200 {object} dto.ResultDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid result id"
// @Failure 401 {object} dto.ErrorResponse "Not your result"
// @Failure 404 {object} dto.ErrorResponse "Unknown result"
// @Security BearerAuth
// @Router /results/{result_id} [get]
func (c *ResultController) GetResultDetails(ctx *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("unauthorized", "missing session"))
		return
	}

	resultID, err := strconv.ParseUint(ctx.Param("result_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid_request", "invalid result id"))
		return
	}

	detail, err := c.submissionService.GetResultDetails(claims.UserID, claims.IsAdmin, uint(resultID))
	if err != nil {
		log.Warn().Err(err).Uint64("resultID", resultID).Msg("GetResultDetails: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// ExportResult godoc
// @Summary Download one submission's trait percentages
// @Description Renders the per-trait percentages as a downloadable txt, csv, or json file.
// @Tags Results
// @Produce plain
// @Param result_id path int true "Result ID"
// @Param format query string false "txt, csv, or json" default(csv)
// @Success 200 {string} string "The exported document"
// @Failure 400 {object} dto.ErrorResponse "Invalid result id or format"
// @Failure 401 {object} dto.ErrorResponse "Not your result"
// @Failure 404 {object} dto.ErrorResponse "Unknown result"
// @Security BearerAuth
// @Router /results/{result_id}/export [get]
func (c *ResultController) ExportResult(ctx *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("unauthorized", "missing session"))
		return
	}

	resultID, err := strconv.ParseUint(ctx.Param("result_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid_request", "invalid result id"))
		return
	}
	format, err := export.FormatFromExtension(ctx.DefaultQuery("format", "csv"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid_request", "format must be txt, csv, or json"))
		return
	}

	data, err := c.submissionService.ExportResult(claims.UserID, claims.IsAdmin, uint(resultID), format)
	if err != nil {
		log.Warn().Err(err).Uint64("resultID", resultID).Msg("ExportResult: service error")
		controller.RespondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=result_%d.%s", resultID, format))
	ctx.Data(http.StatusOK, format.ContentType(), data)
}
