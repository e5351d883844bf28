package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/traitlab/darkmirror/internal/apperr"
	"github.com/traitlab/darkmirror/internal/cache"
	"github.com/traitlab/darkmirror/internal/dto"
	"github.com/traitlab/darkmirror/internal/export"
	"github.com/traitlab/darkmirror/internal/model"
	"github.com/traitlab/darkmirror/internal/repository"
	"github.com/traitlab/darkmirror/internal/scoring"
	"gorm.io/gorm"
)

type SubmissionService interface {
	SubmitResult(userID uint, assessmentID string, req dto.ResultSubmitDTO) (*dto.ResultDetailDTO, error)
	GetUserResults(callerID uint, callerIsAdmin bool, userID uint) ([]dto.ResultSummaryDTO, error)
	GetResultDetails(callerID uint, callerIsAdmin bool, resultID uint) (*dto.ResultDetailDTO, error)
	ExportResult(callerID uint, callerIsAdmin bool, resultID uint, format export.Format) ([]byte, error)
}

type submissionService struct {
	assessmentRepo repository.AssessmentRepository
	resultRepo     repository.ResultRepository
	answerRepo     repository.AnswerRepository
	resultsCache   *cache.TTLCache
	db             *gorm.DB // transaction boundary for SubmitResult
	now            func() time.Time
}

func NewSubmissionService(
	assessmentRepo repository.AssessmentRepository,
	resultRepo repository.ResultRepository,
	answerRepo repository.AnswerRepository,
	resultsCache *cache.TTLCache,
	db *gorm.DB,
) SubmissionService {
	return &submissionService{
		assessmentRepo: assessmentRepo,
		resultRepo:     resultRepo,
		answerRepo:     answerRepo,
		resultsCache:   resultsCache,
		db:             db,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// resultDetails is the persisted ResultDetails JSON document. TraitOrder
// keeps the first-occurrence trait order alongside the aggregate map.
type resultDetails struct {
	TraitOrder []string                          `json:"trait_order"`
	Traits     map[string]scoring.TraitAggregate `json:"traits"`
}

// SubmitResult validates a completed answer set, computes the per-trait
// aggregates, and persists one result row plus one answer row per answer as
// a single transaction. Any write failure rolls the whole submission back.
func (s *submissionService) SubmitResult(userID uint, assessmentID string, req dto.ResultSubmitDTO) (*dto.ResultDetailDTO, error) {
	if len(req.Answers) == 0 {
		return nil, apperr.EmptyAnswerSet("submission must contain at least one answer")
	}

	assessment, err := s.assessmentRepo.FindByIDWithItems(assessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.AssessmentNotFound(fmt.Sprintf("no assessment with id %q", assessmentID))
		}
		log.Error().Err(err).Str("assessmentID", assessmentID).Msg("SubmitResult: assessment lookup failed")
		return nil, fmt.Errorf("error fetching assessment %s: %w", assessmentID, err)
	}

	itemsByID := make(map[uint]model.Item, len(assessment.Items))
	for _, item := range assessment.Items {
		itemsByID[item.ID] = item
	}

	events := make([]scoring.AnswerEvent, 0, len(req.Answers))
	for _, ans := range req.Answers {
		item, ok := itemsByID[ans.QuestionID]
		if !ok {
			return nil, apperr.InvalidAnswerValue(fmt.Sprintf("question %d is not part of assessment %s", ans.QuestionID, assessmentID))
		}
		if err := scoring.ValidateValue(ans.Value, assessment.ScaleMax); err != nil {
			return nil, err
		}
		events = append(events, scoring.AnswerEvent{
			RawValue: ans.Value,
			Trait:    item.Trait,
			Reversed: item.Reversed,
		})
	}

	def := definitionFromModel(assessment)
	total, traitOrder, byTrait := scoring.Aggregate(def, events)

	detailsJSON, err := json.Marshal(resultDetails{TraitOrder: traitOrder, Traits: byTrait})
	if err != nil {
		return nil, fmt.Errorf("error encoding result details: %w", err)
	}

	result := model.AssessmentResult{
		UserID:        userID,
		AssessmentID:  assessmentID,
		TotalScore:    total,
		ResultDetails: string(detailsJSON),
		CompletedAt:   s.now(),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.resultRepo.CreateTx(tx, &result); err != nil {
			return fmt.Errorf("failed to create result row: %w", err)
		}
		for _, ans := range req.Answers {
			answer := model.Answer{
				ResultID:   result.ID,
				UserID:     userID,
				QuestionID: ans.QuestionID,
				Value:      ans.Value,
			}
			if err := s.answerRepo.CreateTx(tx, &answer); err != nil {
				return fmt.Errorf("failed to create answer row for question %d: %w", ans.QuestionID, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Str("assessmentID", assessmentID).Msg("SubmitResult: transaction rolled back")
		return nil, apperr.PersistenceError("failed to persist submission; nothing was stored")
	}

	log.Info().
		Uint("userID", userID).
		Str("assessmentID", assessmentID).
		Uint("resultID", result.ID).
		Int("totalScore", total).
		Int("answerCount", len(req.Answers)).
		Msg("Stored assessment submission")

	return buildResultDetail(&result, assessment.Name, assessment.ScaleMax, nil)
}

// GetUserResults lists a user's submissions newest first. Callers may only
// read their own history unless they hold the admin flag. Reads go through a
// short TTL cache; a just-submitted result may lag by at most the TTL.
func (s *submissionService) GetUserResults(callerID uint, callerIsAdmin bool, userID uint) ([]dto.ResultSummaryDTO, error) {
	if callerID != userID && !callerIsAdmin {
		return nil, apperr.Unauthorized("results belong to another user")
	}

	cached, err := s.resultsCache.GetOrLoad(fmt.Sprintf("user:%d", userID), func() (interface{}, error) {
		results, err := s.resultRepo.FindAllByUser(userID)
		if err != nil {
			log.Error().Err(err).Uint("userID", userID).Msg("GetUserResults: repository query failed")
			return nil, fmt.Errorf("error fetching results for user %d: %w", userID, err)
		}
		dtos := make([]dto.ResultSummaryDTO, 0, len(results))
		for _, r := range results {
			dtos = append(dtos, dto.ResultSummaryDTO{
				ID:           r.ID,
				UserID:       r.UserID,
				AssessmentID: r.AssessmentID,
				TotalScore:   r.TotalScore,
				CompletedAt:  r.CompletedAt,
			})
		}
		return dtos, nil
	})
	if err != nil {
		return nil, err
	}
	return cached.([]dto.ResultSummaryDTO), nil
}

// GetResultDetails returns one submission with its answers and derived
// per-trait percentages.
func (s *submissionService) GetResultDetails(callerID uint, callerIsAdmin bool, resultID uint) (*dto.ResultDetailDTO, error) {
	result, err := s.resultRepo.FindByIDWithAnswers(resultID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.AssessmentNotFound(fmt.Sprintf("no result with id %d", resultID))
		}
		log.Error().Err(err).Uint("resultID", resultID).Msg("GetResultDetails: repository query failed")
		return nil, fmt.Errorf("error fetching result %d: %w", resultID, err)
	}
	if result.UserID != callerID && !callerIsAdmin {
		return nil, apperr.Unauthorized("result belongs to another user")
	}
	return buildResultDetail(result, result.Assessment.Name, result.Assessment.ScaleMax, result.Answers)
}

// ExportResult renders one submission's trait percentages as a downloadable
// document. Access rules match GetResultDetails.
func (s *submissionService) ExportResult(callerID uint, callerIsAdmin bool, resultID uint, format export.Format) ([]byte, error) {
	detail, err := s.GetResultDetails(callerID, callerIsAdmin, resultID)
	if err != nil {
		return nil, err
	}
	scores := make([]scoring.TraitScore, 0, len(detail.TraitOrder))
	for _, trait := range detail.TraitOrder {
		scores = append(scores, scoring.TraitScore{Trait: trait, Value: detail.Traits[trait].Percent})
	}
	return export.Export(scores, format)
}

// buildResultDetail decodes the persisted aggregates and derives the
// presentation percentage (sum over count*scaleMax) for each trait.
func buildResultDetail(result *model.AssessmentResult, assessmentName string, scaleMax int, answers []model.Answer) (*dto.ResultDetailDTO, error) {
	var details resultDetails
	if err := json.Unmarshal([]byte(result.ResultDetails), &details); err != nil {
		return nil, fmt.Errorf("error decoding result details for result %d: %w", result.ID, err)
	}

	traits := make(map[string]dto.TraitDetailDTO, len(details.Traits))
	for trait, agg := range details.Traits {
		percent := 0.0
		if agg.Count > 0 && scaleMax > 0 {
			percent = float64(agg.Sum) / float64(agg.Count*scaleMax) * 100
		}
		traits[trait] = dto.TraitDetailDTO{
			Sum:     agg.Sum,
			Count:   agg.Count,
			Average: agg.Average,
			Percent: percent,
			Label:   scoring.Interpret(trait, percent),
		}
	}

	detail := &dto.ResultDetailDTO{
		ID:             result.ID,
		UserID:         result.UserID,
		AssessmentID:   result.AssessmentID,
		AssessmentName: assessmentName,
		TotalScore:     result.TotalScore,
		TraitOrder:     details.TraitOrder,
		Traits:         traits,
		CompletedAt:    result.CompletedAt,
	}
	for _, ans := range answers {
		detail.Answers = append(detail.Answers, dto.AnswerResponseDTO{
			ID:         ans.ID,
			QuestionID: ans.QuestionID,
			Value:      ans.Value,
		})
	}
	return detail, nil
}

// definitionFromModel adapts a stored assessment into the scoring package's
// definition so both sides share one set of arithmetic.
func definitionFromModel(assessment *model.Assessment) *scoring.Definition {
	def := &scoring.Definition{
		ID:       assessment.ID,
		Name:     assessment.Name,
		ScaleMax: assessment.ScaleMax,
	}
	for _, item := range assessment.Items {
		def.Items = append(def.Items, scoring.Item{
			Text:     item.Text,
			Trait:    item.Trait,
			Reversed: item.Reversed,
			Order:    item.OrderInAssessment,
		})
	}
	return def
}
