package service

import (
	"errors"

	"github.com/htloc/toeic-practice-api/internal/apperror"
	"github.com/htloc/toeic-practice-api/internal/dto"
	"github.com/htloc/toeic-practice-api/internal/model"
	"github.com/htloc/toeic-practice-api/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionService interface {
	CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	GetQuestion(id uint) (*dto.QuestionResponse, error)
	GetAllQuestions(partID *uint) ([]dto.QuestionResponse, error)
	CountQuestions() (int64, error)
	UpdateQuestion(id uint, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	UpdateQuestionImage(id uint, imageFilename string) (*dto.QuestionResponse, error)
	DeleteQuestion(id uint) error
}

type questionService struct {
	questionRepo repository.QuestionRepository
	partRepo     repository.ExamPartRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository, partRepo repository.ExamPartRepository) QuestionService {
	return &questionService{questionRepo: questionRepo, partRepo: partRepo}
}

func (s *questionService) CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	part, err := s.partRepo.FindByID(req.PartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("exam part %d not found", req.PartID)
		}
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to load exam part")
	}
	if !isAnswerChoice(req.CorrectAnswer) {
		return nil, apperror.Invalidf("correct_answer %q is not one of A, B, C, D", req.CorrectAnswer)
	}

	question := model.Question{}
	copier.Copy(&question, &req)
	question.ExamID = part.ExamID // back-reference kept in sync with the owning part

	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Uint("partID", req.PartID).Msg("Failed to create question")
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to create question")
	}

	var resp dto.QuestionResponse
	copier.Copy(&resp, &question)
	return &resp, nil
}

func (s *questionService) GetQuestion(id uint) (*dto.QuestionResponse, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("question %d not found", id)
		}
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to load question")
	}

	var resp dto.QuestionResponse
	copier.Copy(&resp, question)
	return &resp, nil
}

func (s *questionService) GetAllQuestions(partID *uint) ([]dto.QuestionResponse, error) {
	var (
		questions []model.Question
		err       error
	)
	if partID != nil {
		questions, err = s.questionRepo.FindByPartID(*partID)
	} else {
		questions, err = s.questionRepo.FindAll()
	}
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to list questions")
	}

	resps := make([]dto.QuestionResponse, 0, len(questions))
	for _, question := range questions {
		var resp dto.QuestionResponse
		copier.Copy(&resp, &question)
		resps = append(resps, resp)
	}
	return resps, nil
}

func (s *questionService) CountQuestions() (int64, error) {
	count, err := s.questionRepo.Count()
	if err != nil {
		return 0, apperror.Wrap(apperror.KindInternal, err, "failed to count questions")
	}
	return count, nil
}

func (s *questionService) UpdateQuestion(id uint, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("question %d not found", id)
		}
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to load question")
	}

	part, err := s.partRepo.FindByID(req.PartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("exam part %d not found", req.PartID)
		}
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to load exam part")
	}
	if !isAnswerChoice(req.CorrectAnswer) {
		return nil, apperror.Invalidf("correct_answer %q is not one of A, B, C, D", req.CorrectAnswer)
	}

	question.PartID = req.PartID
	question.ExamID = part.ExamID
	question.QuestionText = req.QuestionText
	question.OptionA = req.OptionA
	question.OptionB = req.OptionB
	question.OptionC = req.OptionC
	question.OptionD = req.OptionD
	question.CorrectAnswer = req.CorrectAnswer
	question.ImageFilename = req.ImageFilename
	question.DisplayOrder = req.DisplayOrder

	if err := s.questionRepo.Update(question); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to update question")
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to update question")
	}

	var resp dto.QuestionResponse
	copier.Copy(&resp, question)
	return &resp, nil
}

func (s *questionService) UpdateQuestionImage(id uint, imageFilename string) (*dto.QuestionResponse, error) {
	question, err := s.questionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("question %d not found", id)
		}
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to load question")
	}

	question.ImageFilename = &imageFilename
	if err := s.questionRepo.Update(question); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to update question image")
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to update question image")
	}

	var resp dto.QuestionResponse
	copier.Copy(&resp, question)
	return &resp, nil
}

func (s *questionService) DeleteQuestion(id uint) error {
	if _, err := s.questionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFoundf("question %d not found", id)
		}
		return apperror.Wrap(apperror.KindInternal, err, "failed to load question")
	}

	if err := s.questionRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to delete question")
		return apperror.Wrap(apperror.KindInternal, err, "failed to delete question")
	}
	return nil
}
