package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/traitlab/darkmirror/internal/apperr"
	"github.com/traitlab/darkmirror/internal/cache"
	"github.com/traitlab/darkmirror/internal/dto"
	"github.com/traitlab/darkmirror/internal/repository"
	"gorm.io/gorm"
)

type AssessmentService interface {
	ListAssessments() ([]dto.AssessmentSummaryDTO, error)
	GetQuestions(assessmentID string) (*dto.AssessmentDetailDTO, error)
}

type assessmentService struct {
	assessmentRepo repository.AssessmentRepository
	questionCache  *cache.TTLCache
}

// NewAssessmentService serves assessment reference data. Question lists are
// effectively static, so reads go through a TTL cache that only ever expires;
// nothing invalidates entries explicitly.
func NewAssessmentService(assessmentRepo repository.AssessmentRepository, questionCache *cache.TTLCache) AssessmentService {
	return &assessmentService{assessmentRepo: assessmentRepo, questionCache: questionCache}
}

func (s *assessmentService) ListAssessments() ([]dto.AssessmentSummaryDTO, error) {
	withCounts, err := s.assessmentRepo.FindAllWithItemCount()
	if err != nil {
		log.Error().Err(err).Msg("ListAssessments: repository query failed")
		return nil, fmt.Errorf("error fetching assessments: %w", err)
	}

	dtos := make([]dto.AssessmentSummaryDTO, 0, len(withCounts))
	for _, wc := range withCounts {
		dtos = append(dtos, dto.AssessmentSummaryDTO{
			ID:        wc.Assessment.ID,
			Name:      wc.Assessment.Name,
			ScaleMax:  wc.Assessment.ScaleMax,
			ItemCount: wc.ItemCount,
			CreatedAt: wc.Assessment.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *assessmentService) GetQuestions(assessmentID string) (*dto.AssessmentDetailDTO, error) {
	cached, err := s.questionCache.GetOrLoad(assessmentID, func() (interface{}, error) {
		return s.loadQuestions(assessmentID)
	})
	if err != nil {
		return nil, err
	}
	return cached.(*dto.AssessmentDetailDTO), nil
}

func (s *assessmentService) loadQuestions(assessmentID string) (*dto.AssessmentDetailDTO, error) {
	assessment, err := s.assessmentRepo.FindByIDWithItems(assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.AssessmentNotFound(fmt.Sprintf("no assessment with id %q", assessmentID))
		}
		log.Error().Err(err).Str("assessmentID", assessmentID).Msg("GetQuestions: repository query failed")
		return nil, fmt.Errorf("error fetching assessment %s: %w", assessmentID, err)
	}

	var detail dto.AssessmentDetailDTO
	if err := copier.Copy(&detail, assessment); err != nil {
		log.Error().Err(err).Str("assessmentID", assessmentID).Msg("GetQuestions: failed to map assessment to DTO")
		return nil, fmt.Errorf("error preparing assessment response: %w", err)
	}
	return &detail, nil
}
