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

type ExamService interface {
	CreateExam(req dto.CreateExamRequest) (*dto.ExamResponse, error)
	GetExam(id uint) (*dto.ExamResponse, error)
	GetAllExams() ([]dto.ExamResponse, error)
	UpdateExam(id uint, req dto.CreateExamRequest) (*dto.ExamResponse, error)
	DeleteExam(id uint) error
}

type examService struct {
	examRepo repository.ExamRepository
}

func NewExamService(examRepo repository.ExamRepository) ExamService {
	return &examService{examRepo: examRepo}
}

func (s *examService) CreateExam(req dto.CreateExamRequest) (*dto.ExamResponse, error) {
	exam := model.Exam{
		Title:          req.Title,
		Duration:       req.Duration,
		TotalQuestions: req.TotalQuestions,
		Audio:          req.Audio,
	}

	if err := s.examRepo.Create(&exam); err != nil {
		log.Error().Err(err).Msg("Failed to create exam")
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to create exam")
	}

	var resp dto.ExamResponse
	copier.Copy(&resp, &exam)
	return &resp, nil
}

func (s *examService) GetExam(id uint) (*dto.ExamResponse, error) {
	exam, err := s.examRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("exam %d not found", id)
		}
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to load exam")
	}

	var resp dto.ExamResponse
	copier.Copy(&resp, exam)
	return &resp, nil
}

func (s *examService) GetAllExams() ([]dto.ExamResponse, error) {
	exams, err := s.examRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list exams")
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to list exams")
	}

	resps := make([]dto.ExamResponse, 0, len(exams))
	for _, exam := range exams {
		var resp dto.ExamResponse
		copier.Copy(&resp, &exam)
		resps = append(resps, resp)
	}
	return resps, nil
}

func (s *examService) UpdateExam(id uint, req dto.CreateExamRequest) (*dto.ExamResponse, error) {
	exam, err := s.examRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("exam %d not found", id)
		}
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to load exam")
	}

	exam.Title = req.Title
	exam.Duration = req.Duration
	exam.TotalQuestions = req.TotalQuestions
	exam.Audio = req.Audio

	if err := s.examRepo.Update(exam); err != nil {
		log.Error().Err(err).Uint("examID", id).Msg("Failed to update exam")
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to update exam")
	}

	var resp dto.ExamResponse
	copier.Copy(&resp, exam)
	return &resp, nil
}

func (s *examService) DeleteExam(id uint) error {
	if _, err := s.examRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFoundf("exam %d not found", id)
		}
		return apperror.Wrap(apperror.KindInternal, err, "failed to load exam")
	}

	if err := s.examRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("examID", id).Msg("Failed to delete exam")
		return apperror.Wrap(apperror.KindInternal, err, "failed to delete exam")
	}
	return nil
}
