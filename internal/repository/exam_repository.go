package repository

import (
	"github.com/htloc/toeic-practice-api/internal/model"
	"gorm.io/gorm"
)

type ExamRepository interface {
	Create(exam *model.Exam) error
	FindByID(id uint) (*model.Exam, error)
	FindByIDWithPartsAndQuestions(id uint) (*model.Exam, error)
	FindAll() ([]model.Exam, error)
	Update(exam *model.Exam) error
	Delete(id uint) error
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) Create(exam *model.Exam) error {
	return r.db.Create(exam).Error
}

func (r *examRepository) FindByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	if err := r.db.First(&exam, id).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindByIDWithPartsAndQuestions(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.
		Preload("Parts", func(db *gorm.DB) *gorm.DB {
			return db.Order("exam_parts.part_number ASC")
		}).
		Preload("Parts.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.display_order ASC NULLS LAST, questions.id ASC")
		}).
		First(&exam, id).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindAll() ([]model.Exam, error) {
	var exams []model.Exam
	if err := r.db.Order("created_at DESC").Find(&exams).Error; err != nil {
		return nil, err
	}
	return exams, nil
}

func (r *examRepository) Update(exam *model.Exam) error {
	return r.db.Save(exam).Error
}

func (r *examRepository) Delete(id uint) error {
	return r.db.Delete(&model.Exam{}, id).Error
}
