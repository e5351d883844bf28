package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/traitlab/darkmirror/internal/controller"
	"github.com/traitlab/darkmirror/internal/dto"
	"github.com/traitlab/darkmirror/internal/service"
)

type AdminAssessmentController struct {
	adminService service.AdminAssessmentService
}

func NewAdminAssessmentController(adminService service.AdminAssessmentService) *AdminAssessmentController {
	return &AdminAssessmentController{adminService: adminService}
}

// CreateAssessment godoc
// @Summary (Admin) Create a custom assessment
// @Description Registers a new scale with all of its items. Scale must be 5 or 7 points; item order must be unique.
// @Tags Admin - Assessments
// @Accept json
// @Produce json
// @Param assessment body dto.AssessmentCreateDTO true "Assessment definition with items"
// @Success 201 {object} dto.AssessmentDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid definition"
// @Failure 401 {object} dto.ErrorResponse "Admin privilege required"
// @Failure 409 {object} dto.ErrorResponse "Assessment id already exists"
// @Security BearerAuth
// @Router /admin/assessments [post]
func (c *AdminAssessmentController) CreateAssessment(ctx *gin.Context) {
	var req dto.AssessmentCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}

	detail, err := c.adminService.CreateAssessment(req)
	if err != nil {
		log.Warn().Err(err).Str("assessmentID", req.ID).Msg("CreateAssessment: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, detail)
}
