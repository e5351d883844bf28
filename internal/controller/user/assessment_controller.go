package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/traitlab/darkmirror/internal/controller"
	"github.com/traitlab/darkmirror/internal/service"
)

type AssessmentController struct {
	assessmentService service.AssessmentService
}

func NewAssessmentController(assessmentService service.AssessmentService) *AssessmentController {
	return &AssessmentController{assessmentService: assessmentService}
}

// ListAssessments godoc
// @Summary List available assessments
// @Description Returns id, name, scale, and item count for every assessment. No authentication required.
// @Tags Assessments
// @Produce json
// @Success 200 {array} dto.AssessmentSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /assessments [get]
func (c *AssessmentController) ListAssessments(ctx *gin.Context) {
	summaries, err := c.assessmentService.ListAssessments()
	if err != nil {
		log.Error().Err(err).Msg("ListAssessments: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}

// GetQuestions godoc
// @Summary Get an assessment's question list
// @Description Returns the items of an assessment in declared order. Served from a short TTL cache.
// @Tags Assessments
// @Produce json
// @Param assessment_id path string true "Assessment ID"
// @Success 200 {object} dto.AssessmentDetailDTO
// @Failure 401 {object} dto.ErrorResponse "Missing or expired session token"
// @Failure 404 {object} dto.ErrorResponse "Unknown assessment"
// @Security BearerAuth
// @Router /assessments/{assessment_id}/questions [get]
func (c *AssessmentController) GetQuestions(ctx *gin.Context) {
	assessmentID := ctx.Param("assessment_id")

	detail, err := c.assessmentService.GetQuestions(assessmentID)
	if err != nil {
		log.Warn().Err(err).Str("assessmentID", assessmentID).Msg("GetQuestions: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}
