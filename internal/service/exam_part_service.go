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

type ExamPartService interface {
	CreatePart(req dto.CreateExamPartRequest) (*dto.ExamPartResponse, error)
	GetPart(id uint) (*dto.ExamPartResponse, error)
	GetAllParts() ([]dto.ExamPartResponse, error)
	GetPartsByExam(examID uint) ([]dto.ExamPartResponse, error)
	UpdatePart(id uint, req dto.CreateExamPartRequest) (*dto.ExamPartResponse, error)
	DeletePart(id uint) error
}

type examPartService struct {
	partRepo repository.ExamPartRepository
	examRepo repository.ExamRepository
}

func NewExamPartService(partRepo repository.ExamPartRepository, examRepo repository.ExamRepository) ExamPartService {
	return &examPartService{partRepo: partRepo, examRepo: examRepo}
}

// partNumberTaken reports whether the exam already has a part with the given
// number, ignoring the part being updated.
func (s *examPartService) partNumberTaken(examID uint, partNumber int, excludeID uint) (bool, error) {
	existing, err := s.partRepo.FindByExamAndPartNumber(examID, partNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, apperror.Wrap(apperror.KindInternal, err, "failed to check part number")
	}
	return existing.ID != excludeID, nil
}

func (s *examPartService) CreatePart(req dto.CreateExamPartRequest) (*dto.ExamPartResponse, error) {
	if _, err := s.examRepo.FindByID(req.ExamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("exam %d not found", req.ExamID)
		}
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to load exam")
	}

	taken, err := s.partNumberTaken(req.ExamID, req.PartNumber, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.Invalidf("exam %d already has a part %d", req.ExamID, req.PartNumber)
	}

	part := model.ExamPart{
		ExamID:         req.ExamID,
		PartNumber:     req.PartNumber,
		Description:    req.Description,
		TotalQuestions: req.TotalQuestions,
	}

	if err := s.partRepo.Create(&part); err != nil {
		log.Error().Err(err).Uint("examID", req.ExamID).Msg("Failed to create exam part")
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to create exam part")
	}

	var resp dto.ExamPartResponse
	copier.Copy(&resp, &part)
	return &resp, nil
}

func (s *examPartService) GetPart(id uint) (*dto.ExamPartResponse, error) {
	part, err := s.partRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("exam part %d not found", id)
		}
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to load exam part")
	}

	var resp dto.ExamPartResponse
	copier.Copy(&resp, part)
	return &resp, nil
}

func (s *examPartService) GetAllParts() ([]dto.ExamPartResponse, error) {
	parts, err := s.partRepo.FindAll()
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to list exam parts")
	}
	return partResponses(parts), nil
}

func (s *examPartService) GetPartsByExam(examID uint) ([]dto.ExamPartResponse, error) {
	parts, err := s.partRepo.FindByExamID(examID)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to list exam parts")
	}
	return partResponses(parts), nil
}

func (s *examPartService) UpdatePart(id uint, req dto.CreateExamPartRequest) (*dto.ExamPartResponse, error) {
	part, err := s.partRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("exam part %d not found", id)
		}
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to load exam part")
	}

	taken, err := s.partNumberTaken(req.ExamID, req.PartNumber, part.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.Invalidf("exam %d already has a part %d", req.ExamID, req.PartNumber)
	}

	part.ExamID = req.ExamID
	part.PartNumber = req.PartNumber
	part.Description = req.Description
	part.TotalQuestions = req.TotalQuestions

	if err := s.partRepo.Update(part); err != nil {
		log.Error().Err(err).Uint("partID", id).Msg("Failed to update exam part")
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to update exam part")
	}

	var resp dto.ExamPartResponse
	copier.Copy(&resp, part)
	return &resp, nil
}

func (s *examPartService) DeletePart(id uint) error {
	if _, err := s.partRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFoundf("exam part %d not found", id)
		}
		return apperror.Wrap(apperror.KindInternal, err, "failed to load exam part")
	}

	if err := s.partRepo.Delete(id); err != nil {
		log.Error().Err(err).Uint("partID", id).Msg("Failed to delete exam part")
		return apperror.Wrap(apperror.KindInternal, err, "failed to delete exam part")
	}
	return nil
}

func partResponses(parts []model.ExamPart) []dto.ExamPartResponse {
	resps := make([]dto.ExamPartResponse, 0, len(parts))
	for _, part := range parts {
		var resp dto.ExamPartResponse
		copier.Copy(&resp, &part)
		resps = append(resps, resp)
	}
	return resps
}
