package service

import (
	"errors"
	"math/rand"
	"sort"
	"sync"

	"github.com/htloc/toeic-practice-api/internal/apperror"
	"github.com/htloc/toeic-practice-api/internal/dto"
	"github.com/htloc/toeic-practice-api/internal/model"
	"github.com/htloc/toeic-practice-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ExamAssemblyService builds the exam payload a test taker receives.
type ExamAssemblyService interface {
	// AssembleExam returns the capped, ordered exam. With timeExpired the
	// questions of every part are reshuffled and the new 1..N display order
	// is persisted, changing what later non-expired calls return.
	AssembleExam(examID uint, timeExpired bool) (*dto.ExamPayload, error)
	// PreviewExam runs the same selection without persisting anything.
	PreviewExam(examID uint, timeExpired bool) (*dto.ExamPayload, error)
	// AssembleExamPart returns the single part whose part number equals page.
	AssembleExamPart(examID uint, page int) (*dto.ExamPartPayload, error)
}

type examAssemblyService struct {
	examRepo     repository.ExamRepository
	partRepo     repository.ExamPartRepository
	questionRepo repository.QuestionRepository
	limits       PartQuestionLimits
	rngMu        sync.Mutex // rand.Rand is not safe for concurrent handlers
	rng          *rand.Rand
}

func NewExamAssemblyService(
	examRepo repository.ExamRepository,
	partRepo repository.ExamPartRepository,
	questionRepo repository.QuestionRepository,
	limits PartQuestionLimits,
	rng *rand.Rand,
) ExamAssemblyService {
	return &examAssemblyService{
		examRepo:     examRepo,
		partRepo:     partRepo,
		questionRepo: questionRepo,
		limits:       limits,
		rng:          rng,
	}
}

func (s *examAssemblyService) AssembleExam(examID uint, timeExpired bool) (*dto.ExamPayload, error) {
	return s.assemble(examID, timeExpired, timeExpired)
}

func (s *examAssemblyService) PreviewExam(examID uint, timeExpired bool) (*dto.ExamPayload, error) {
	return s.assemble(examID, timeExpired, false)
}

func (s *examAssemblyService) assemble(examID uint, timeExpired, persistOrder bool) (*dto.ExamPayload, error) {
	exam, err := s.examRepo.FindByIDWithPartsAndQuestions(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("exam %d not found", examID)
		}
		log.Error().Err(err).Uint("examID", examID).Msg("AssembleExam: failed to load exam")
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to load exam")
	}

	payload := &dto.ExamPayload{
		ExamID:   exam.ID,
		Audio:    exam.Audio,
		Title:    exam.Title,
		Duration: exam.Duration,
	}

	parts := make([]model.ExamPart, len(exam.Parts))
	copy(parts, exam.Parts)
	sort.SliceStable(parts, func(i, j int) bool {
		return parts[i].PartNumber < parts[j].PartNumber
	})

	for _, part := range parts {
		// Required-join semantics: a part without questions is not served.
		if len(part.Questions) == 0 {
			continue
		}

		selected := s.selectQuestions(part.Questions, s.limits.LimitFor(part.PartNumber), timeExpired)

		if persistOrder {
			ids := questionIDs(selected)
			if err := s.questionRepo.PersistDisplayOrder(ids); err != nil {
				log.Error().Err(err).Uint("examID", examID).Uint("partID", part.ID).Msg("AssembleExam: failed to persist shuffled order")
				return nil, apperror.Wrap(apperror.KindInternal, err, "failed to persist question order")
			}
		}

		payload.Parts = append(payload.Parts, buildAssembledPart(part, selected))
	}

	if len(payload.Parts) == 0 {
		return nil, apperror.NotFoundf("exam %d has no parts with questions", examID)
	}

	return payload, nil
}

func (s *examAssemblyService) AssembleExamPart(examID uint, page int) (*dto.ExamPartPayload, error) {
	if page < 1 {
		return nil, apperror.Invalidf("page must be at least 1, got %d", page)
	}

	exam, err := s.examRepo.FindByID(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("exam %d not found", examID)
		}
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to load exam")
	}

	part, err := s.partRepo.FindByExamAndPartNumber(examID, page)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("part %d not found in exam %d", page, examID)
		}
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to load exam part")
	}
	if len(part.Questions) == 0 {
		return nil, apperror.NotFoundf("part %d of exam %d has no questions", page, examID)
	}

	totalParts, err := s.partRepo.CountByExamID(examID)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to count exam parts")
	}

	selected := s.selectQuestions(part.Questions, s.limits.LimitFor(part.PartNumber), false)

	return &dto.ExamPartPayload{
		ExamID:      exam.ID,
		Audio:       exam.Audio,
		Title:       exam.Title,
		Duration:    exam.Duration,
		CurrentPage: page,
		TotalPages:  int(totalParts),
		Parts:       []dto.AssembledPart{buildAssembledPart(*part, selected)},
	}, nil
}

func (s *examAssemblyService) selectQuestions(questions []model.Question, limit int, shuffle bool) []model.Question {
	if !shuffle {
		return SelectPartQuestions(questions, limit, false, nil)
	}
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return SelectPartQuestions(questions, limit, true, s.rng)
}

func buildAssembledPart(part model.ExamPart, selected []model.Question) dto.AssembledPart {
	assembled := dto.AssembledPart{
		PartID:              part.ID,
		PartNumber:          part.PartNumber,
		Questions:           make([]dto.AssembledQuestion, 0, len(selected)),
		OriginalQuestionIDs: questionIDs(part.Questions),
	}
	for _, q := range selected {
		assembled.Questions = append(assembled.Questions, dto.AssembledQuestion{
			ID:            q.ID,
			QuestionText:  q.QuestionText,
			OptionA:       q.OptionA,
			OptionB:       q.OptionB,
			OptionC:       q.OptionC,
			OptionD:       q.OptionD,
			ImageFilename: q.ImageFilename,
		})
	}
	return assembled
}

func questionIDs(questions []model.Question) []uint {
	ids := make([]uint, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}
