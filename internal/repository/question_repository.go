package repository

import (
	"github.com/htloc/toeic-practice-api/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByIDs(ids []uint) ([]model.Question, error)
	FindAll() ([]model.Question, error)
	FindByPartID(partID uint) ([]model.Question, error)
	Count() (int64, error)
	Update(question *model.Question) error
	Delete(id uint) error
	// PersistDisplayOrder rewrites the display order of the given questions
	// to 1..N following slice order, in a single transaction.
	PersistDisplayOrder(questionIDs []uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByIDs(ids []uint) ([]model.Question, error) {
	var questions []model.Question
	if len(ids) == 0 {
		return questions, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindAll() ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Order("created_at DESC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByPartID(partID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Where("part_id = ?", partID).
		Order("display_order ASC NULLS LAST, id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Question{}).Count(&count).Error
	return count, err
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) Delete(id uint) error {
	return r.db.Delete(&model.Question{}, id).Error
}

func (r *questionRepository) PersistDisplayOrder(questionIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range questionIDs {
			order := i + 1
			if err := tx.Model(&model.Question{}).Where("id = ?", id).
				Update("display_order", order).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
