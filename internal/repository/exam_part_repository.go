package repository

import (
	"github.com/htloc/toeic-practice-api/internal/model"
	"gorm.io/gorm"
)

type ExamPartRepository interface {
	Create(part *model.ExamPart) error
	FindByID(id uint) (*model.ExamPart, error)
	FindAll() ([]model.ExamPart, error)
	FindByExamID(examID uint) ([]model.ExamPart, error)
	// FindByExamAndPartNumber loads the part with its questions in stored
	// display order.
	FindByExamAndPartNumber(examID uint, partNumber int) (*model.ExamPart, error)
	CountByExamID(examID uint) (int64, error)
	Update(part *model.ExamPart) error
	Delete(id uint) error
}

type examPartRepository struct {
	db *gorm.DB
}

func NewExamPartRepository(db *gorm.DB) ExamPartRepository {
	return &examPartRepository{db: db}
}

func (r *examPartRepository) Create(part *model.ExamPart) error {
	return r.db.Create(part).Error
}

func (r *examPartRepository) FindByID(id uint) (*model.ExamPart, error) {
	var part model.ExamPart
	if err := r.db.First(&part, id).Error; err != nil {
		return nil, err
	}
	return &part, nil
}

func (r *examPartRepository) FindAll() ([]model.ExamPart, error) {
	var parts []model.ExamPart
	if err := r.db.Order("exam_id ASC, part_number ASC").Find(&parts).Error; err != nil {
		return nil, err
	}
	return parts, nil
}

func (r *examPartRepository) FindByExamID(examID uint) ([]model.ExamPart, error) {
	var parts []model.ExamPart
	if err := r.db.Where("exam_id = ?", examID).Order("part_number ASC").Find(&parts).Error; err != nil {
		return nil, err
	}
	return parts, nil
}

func (r *examPartRepository) FindByExamAndPartNumber(examID uint, partNumber int) (*model.ExamPart, error) {
	var part model.ExamPart
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.display_order ASC NULLS LAST, questions.id ASC")
		}).
		Where("exam_id = ? AND part_number = ?", examID, partNumber).
		First(&part).Error
	if err != nil {
		return nil, err
	}
	return &part, nil
}

func (r *examPartRepository) CountByExamID(examID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.ExamPart{}).Where("exam_id = ?", examID).Count(&count).Error
	return count, err
}

func (r *examPartRepository) Update(part *model.ExamPart) error {
	return r.db.Save(part).Error
}

func (r *examPartRepository) Delete(id uint) error {
	return r.db.Delete(&model.ExamPart{}, id).Error
}
