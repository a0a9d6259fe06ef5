package service

import (
	"errors"
	"time"

	"github.com/htloc/toeic-practice-api/internal/apperror"
	"github.com/htloc/toeic-practice-api/internal/dto"
	"github.com/htloc/toeic-practice-api/internal/model"
	"github.com/htloc/toeic-practice-api/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ExamResultService is the admin-side surface over attempt records. Grading
// itself lives in SubmissionService; these are plain reads and corrections.
type ExamResultService interface {
	GetAllExamResults() ([]dto.ExamResultResponse, error)
	GetExamResult(id uint) (*dto.ExamResultResponse, error)
	GetExamResultWithDetails(id uint) (*dto.ExamResultResponse, error)
	GetExamResultsByUser(userID uint) ([]dto.ExamResultResponse, error)
	CreateExamResult(req dto.CreateExamResultRequest) (*dto.ExamResultResponse, error)
	UpdateExamResult(id uint, req dto.CreateExamResultRequest) (*dto.ExamResultResponse, error)
	DeleteExamResult(id uint) error
}

type examResultService struct {
	resultRepo repository.ExamResultRepository
	userRepo   repository.UserRepository
	examRepo   repository.ExamRepository
}

func NewExamResultService(
	resultRepo repository.ExamResultRepository,
	userRepo repository.UserRepository,
	examRepo repository.ExamRepository,
) ExamResultService {
	return &examResultService{resultRepo: resultRepo, userRepo: userRepo, examRepo: examRepo}
}

func (s *examResultService) GetAllExamResults() ([]dto.ExamResultResponse, error) {
	results, err := s.resultRepo.FindAll()
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to list exam results")
	}
	return resultResponses(results), nil
}

func (s *examResultService) GetExamResult(id uint) (*dto.ExamResultResponse, error) {
	result, err := s.resultRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("exam result %d not found", id)
		}
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to load exam result")
	}

	var resp dto.ExamResultResponse
	copier.Copy(&resp, result)
	return &resp, nil
}

func (s *examResultService) GetExamResultWithDetails(id uint) (*dto.ExamResultResponse, error) {
	result, err := s.resultRepo.FindByIDWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("exam result %d not found", id)
		}
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to load exam result")
	}

	var resp dto.ExamResultResponse
	copier.Copy(&resp, result)
	return &resp, nil
}

func (s *examResultService) GetExamResultsByUser(userID uint) ([]dto.ExamResultResponse, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("user %d not found", userID)
		}
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to load user")
	}

	results, err := s.resultRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to list exam results")
	}
	return resultResponses(results), nil
}

func (s *examResultService) CreateExamResult(req dto.CreateExamResultRequest) (*dto.ExamResultResponse, error) {
	if err := s.checkReferences(req); err != nil {
		return nil, err
	}

	result := model.ExamResult{}
	copier.Copy(&result, &req)
	if result.Status == "" {
		result.Status = model.ExamResultStatusInProgress
	}
	if result.Status == model.ExamResultStatusCompleted {
		now := time.Now()
		result.CompletedAt = &now
	}

	if err := s.resultRepo.Create(&result); err != nil {
		log.Error().Err(err).Msg("Failed to create exam result")
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to create exam result")
	}

	var resp dto.ExamResultResponse
	copier.Copy(&resp, &result)
	return &resp, nil
}

func (s *examResultService) UpdateExamResult(id uint, req dto.CreateExamResultRequest) (*dto.ExamResultResponse, error) {
	result, err := s.resultRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("exam result %d not found", id)
		}
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to load exam result")
	}

	if err := s.checkReferences(req); err != nil {
		return nil, err
	}

	result.UserID = req.UserID
	result.ExamID = req.ExamID
	result.Score = req.Score
	result.ListeningScore = req.ListeningScore
	result.ReadingScore = req.ReadingScore
	result.CorrectAnswers = req.CorrectAnswers
	result.WrongAnswers = req.WrongAnswers
	result.UnansweredQuestions = req.UnansweredQuestions
	result.TotalQuestions = req.TotalQuestions
	result.CompletedTime = req.CompletedTime
	if req.Status != "" {
		result.Status = req.Status
	}

	if err := s.resultRepo.Update(result); err != nil {
		log.Error().Err(err).Uint("resultID", id).Msg("Failed to update exam result")
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to update exam result")
	}

	var resp dto.ExamResultResponse
	copier.Copy(&resp, result)
	return &resp, nil
}

func (s *examResultService) DeleteExamResult(id uint) error {
	if _, err := s.resultRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFoundf("exam result %d not found", id)
		}
		return apperror.Wrap(apperror.KindInternal, err, "failed to load exam result")
	}

	// Details cascade with the result.
	if err := s.resultRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("resultID", id).Msg("Failed to delete exam result")
		return apperror.Wrap(apperror.KindInternal, err, "failed to delete exam result")
	}
	return nil
}

func (s *examResultService) checkReferences(req dto.CreateExamResultRequest) error {
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFoundf("user %d not found", req.UserID)
		}
		return apperror.Wrap(apperror.KindInternal, err, "failed to load user")
	}
	if _, err := s.examRepo.FindByID(req.ExamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFoundf("exam %d not found", req.ExamID)
		}
		return apperror.Wrap(apperror.KindInternal, err, "failed to load exam")
	}
	return nil
}

func resultResponses(results []model.ExamResult) []dto.ExamResultResponse {
	resps := make([]dto.ExamResultResponse, 0, len(results))
	for _, result := range results {
		var resp dto.ExamResultResponse
		copier.Copy(&resp, &result)
		resps = append(resps, resp)
	}
	return resps
}
