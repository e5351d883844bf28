package service

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/traitlab/darkmirror/internal/apperr"
	"github.com/traitlab/darkmirror/internal/dto"
	"github.com/traitlab/darkmirror/internal/model"
	"github.com/traitlab/darkmirror/internal/repository"
	"gorm.io/gorm"
)

type AdminAssessmentService interface {
	CreateAssessment(req dto.AssessmentCreateDTO) (*dto.AssessmentDetailDTO, error)
}

type adminAssessmentService struct {
	assessmentRepo repository.AssessmentRepository
}

func NewAdminAssessmentService(assessmentRepo repository.AssessmentRepository) AdminAssessmentService {
	return &adminAssessmentService{assessmentRepo: assessmentRepo}
}

// CreateAssessment registers a custom scale with all of its items in one
// shot. Item order must be unique within the assessment; items are stored in
// declared order.
func (s *adminAssessmentService) CreateAssessment(req dto.AssessmentCreateDTO) (*dto.AssessmentDetailDTO, error) {
	existing, err := s.assessmentRepo.FindByID(req.ID)
	if err == nil && existing.ID != "" {
		return nil, apperr.DuplicateAssessment(fmt.Sprintf("assessment %q already exists", req.ID))
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Str("assessmentID", req.ID).Msg("CreateAssessment: duplicate check failed")
		return nil, fmt.Errorf("error checking assessment id: %w", err)
	}

	seen := make(map[int]struct{}, len(req.Items))
	for _, item := range req.Items {
		if _, dup := seen[item.OrderInAssessment]; dup {
			return nil, apperr.InvalidAnswerValue(fmt.Sprintf("duplicate item order %d", item.OrderInAssessment))
		}
		seen[item.OrderInAssessment] = struct{}{}
	}

	assessment := model.Assessment{
		ID:       req.ID,
		Name:     req.Name,
		ScaleMax: req.ScaleMax,
	}
	for _, item := range req.Items {
		assessment.Items = append(assessment.Items, model.Item{
			Text:              item.Text,
			Trait:             item.Trait,
			Reversed:          item.Reversed,
			OrderInAssessment: item.OrderInAssessment,
		})
	}
	sort.SliceStable(assessment.Items, func(i, j int) bool {
		return assessment.Items[i].OrderInAssessment < assessment.Items[j].OrderInAssessment
	})

	if err := s.assessmentRepo.Create(&assessment); err != nil {
		log.Error().Err(err).Str("assessmentID", req.ID).Msg("CreateAssessment: failed to persist assessment")
		return nil, apperr.PersistenceError("failed to create assessment")
	}

	log.Info().Str("assessmentID", assessment.ID).Int("itemCount", len(assessment.Items)).Msg("Created custom assessment")

	var detail dto.AssessmentDetailDTO
	if err := copier.Copy(&detail, &assessment); err != nil {
		return nil, fmt.Errorf("error preparing assessment response: %w", err)
	}
	return &detail, nil
}
