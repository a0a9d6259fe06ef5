package service

import (
	"errors"
	"time"

	"github.com/htloc/toeic-practice-api/internal/apperror"
	"github.com/htloc/toeic-practice-api/internal/dto"
	"github.com/htloc/toeic-practice-api/internal/model"
	"github.com/htloc/toeic-practice-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SubmissionService grades a full exam submission and records the attempt.
type SubmissionService interface {
	SubmitAnswers(userID, examID uint, answers []dto.SubmittedAnswer, completedTime int) (*dto.SubmissionSummary, error)
}

type submissionService struct {
	userRepo     repository.UserRepository
	examRepo     repository.ExamRepository
	partRepo     repository.ExamPartRepository
	questionRepo repository.QuestionRepository
	resultRepo   repository.ExamResultRepository
	// strictMissingQuestion rejects submissions referencing unknown
	// questions instead of silently skipping them.
	strictMissingQuestion bool
}

func NewSubmissionService(
	userRepo repository.UserRepository,
	examRepo repository.ExamRepository,
	partRepo repository.ExamPartRepository,
	questionRepo repository.QuestionRepository,
	resultRepo repository.ExamResultRepository,
	strictMissingQuestion bool,
) SubmissionService {
	return &submissionService{
		userRepo:              userRepo,
		examRepo:              examRepo,
		partRepo:              partRepo,
		questionRepo:          questionRepo,
		resultRepo:            resultRepo,
		strictMissingQuestion: strictMissingQuestion,
	}
}

func (s *submissionService) SubmitAnswers(userID, examID uint, answers []dto.SubmittedAnswer, completedTime int) (*dto.SubmissionSummary, error) {
	if examID == 0 {
		return nil, apperror.Invalidf("exam_id is required")
	}
	if len(answers) == 0 {
		return nil, apperror.Invalidf("submission must contain at least one answer")
	}
	for _, answer := range answers {
		if answer.QuestionID == 0 {
			return nil, apperror.Invalidf("every answer needs a question_id")
		}
		if answer.SelectedAnswer != nil && !isAnswerChoice(*answer.SelectedAnswer) {
			return nil, apperror.Invalidf("selected_answer %q for question %d is not one of A, B, C, D", *answer.SelectedAnswer, answer.QuestionID)
		}
	}

	// Existence checks come before any scoring or persistence.
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("user %d not found", userID)
		}
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to load user")
	}
	if _, err := s.examRepo.FindByID(examID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("exam %d not found", examID)
		}
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to load exam")
	}

	questions, err := s.loadQuestions(answers)
	if err != nil {
		return nil, err
	}

	partNumbers, err := s.loadPartNumbers(examID)
	if err != nil {
		return nil, err
	}

	report := GradeSubmission(questions, partNumbers, answers)
	if report.Skipped > 0 {
		if s.strictMissingQuestion {
			return nil, apperror.Invalidf("%d submitted answers reference unknown questions", report.Skipped)
		}
		log.Warn().Uint("examID", examID).Int("skipped", report.Skipped).Msg("SubmitAnswers: answers for unknown questions skipped")
	}

	now := time.Now()
	result := model.ExamResult{
		UserID:              userID,
		ExamID:              examID,
		Score:               report.TotalScore,
		ListeningScore:      report.ListeningScore,
		ReadingScore:        report.ReadingScore,
		CorrectAnswers:      report.Correct,
		WrongAnswers:        report.Wrong,
		UnansweredQuestions: report.Unanswered,
		TotalQuestions:      report.Correct + report.Wrong + report.Unanswered,
		CompletedTime:       completedTime,
		Status:              model.ExamResultStatusCompleted,
		CompletedAt:         &now,
		Details:             detailsFromReport(report),
	}

	// One transaction: the attempt row and all its details, or nothing.
	if err := s.resultRepo.Create(&result); err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("examID", examID).Msg("SubmitAnswers: failed to persist attempt")
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to record submission")
	}

	log.Info().
		Uint("userID", userID).
		Uint("examID", examID).
		Uint("resultID", result.ID).
		Int("correct", report.Correct).
		Int("score", report.TotalScore).
		Msg("SubmitAnswers: attempt recorded")

	return &dto.SubmissionSummary{
		Message:             "Exam submitted successfully",
		CorrectAnswers:      report.Correct,
		WrongAnswers:        report.Wrong,
		UnansweredQuestions: report.Unanswered,
		SkippedQuestions:    report.Skipped,
		TotalScore:          report.TotalScore,
		ListeningScore:      report.ListeningScore,
		ReadingScore:        report.ReadingScore,
		CompletedTime:       completedTime,
		CompletedAt:         now,
	}, nil
}

func (s *submissionService) loadQuestions(answers []dto.SubmittedAnswer) (map[uint]model.Question, error) {
	ids := make([]uint, 0, len(answers))
	seen := make(map[uint]bool, len(answers))
	for _, answer := range answers {
		if !seen[answer.QuestionID] {
			seen[answer.QuestionID] = true
			ids = append(ids, answer.QuestionID)
		}
	}

	questions, err := s.questionRepo.FindByIDs(ids)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to load questions")
	}

	questionMap := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		questionMap[q.ID] = q
	}
	return questionMap, nil
}

func (s *submissionService) loadPartNumbers(examID uint) (map[uint]int, error) {
	parts, err := s.partRepo.FindByExamID(examID)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to load exam parts")
	}
	partNumbers := make(map[uint]int, len(parts))
	for _, part := range parts {
		partNumbers[part.ID] = part.PartNumber
	}
	return partNumbers, nil
}

func detailsFromReport(report GradingReport) []model.Detail {
	details := make([]model.Detail, 0, len(report.Answers))
	for _, graded := range report.Answers {
		if graded.Outcome == OutcomeSkippedMissingQuestion {
			continue
		}
		details = append(details, model.Detail{
			QuestionID:     graded.QuestionID,
			SelectedAnswer: graded.SelectedAnswer,
			CorrectAnswer:  graded.CorrectAnswer,
			Score:          graded.Score,
		})
	}
	return details
}

func isAnswerChoice(answer string) bool {
	switch answer {
	case "A", "B", "C", "D":
		return true
	}
	return false
}
