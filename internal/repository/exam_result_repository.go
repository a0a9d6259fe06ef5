package repository

import (
	"time"

	"github.com/htloc/toeic-practice-api/internal/model"
	"gorm.io/gorm"
)

// DailyAttemptRow is one day of the monthly attempts aggregate.
type DailyAttemptRow struct {
	Date     time.Time
	Attempts int64
}

type ExamResultRepository interface {
	// Create inserts the result and its Details in one transaction.
	Create(result *model.ExamResult) error
	FindByID(id uint) (*model.ExamResult, error)
	FindByIDWithDetails(id uint) (*model.ExamResult, error)
	FindAll() ([]model.ExamResult, error)
	FindByUserID(userID uint) ([]model.ExamResult, error)
	Update(result *model.ExamResult) error
	Delete(id uint) error
	// CountDailyAttempts groups COMPLETED attempts by completion date within
	// [since, until).
	CountDailyAttempts(since, until time.Time) ([]DailyAttemptRow, error)
	// AverageScoreSince averages scores of COMPLETED attempts finished after
	// since. Returns nil when no attempt matches.
	AverageScoreSince(since time.Time) (*float64, error)
}

type examResultRepository struct {
	db *gorm.DB
}

func NewExamResultRepository(db *gorm.DB) ExamResultRepository {
	return &examResultRepository{db: db}
}

func (r *examResultRepository) Create(result *model.ExamResult) error {
	// GORM creates the associated Details rows as part of the same
	// transaction, so a failed submission leaves no partial attempt behind.
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(result).Error
	})
}

func (r *examResultRepository) FindByID(id uint) (*model.ExamResult, error) {
	var result model.ExamResult
	if err := r.db.First(&result, id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *examResultRepository) FindByIDWithDetails(id uint) (*model.ExamResult, error) {
	var result model.ExamResult
	if err := r.db.Preload("Details").First(&result, id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *examResultRepository) FindAll() ([]model.ExamResult, error) {
	var results []model.ExamResult
	if err := r.db.Order("created_at DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *examResultRepository) FindByUserID(userID uint) ([]model.ExamResult, error) {
	var results []model.ExamResult
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *examResultRepository) Update(result *model.ExamResult) error {
	return r.db.Save(result).Error
}

func (r *examResultRepository) Delete(id uint) error {
	return r.db.Delete(&model.ExamResult{}, id).Error
}

func (r *examResultRepository) CountDailyAttempts(since, until time.Time) ([]DailyAttemptRow, error) {
	var rows []DailyAttemptRow
	err := r.db.Model(&model.ExamResult{}).
		Select("DATE(completed_at) AS date, COUNT(*) AS attempts").
		Where("status = ? AND completed_at >= ? AND completed_at < ?", model.ExamResultStatusCompleted, since, until).
		Group("DATE(completed_at)").
		Order("date ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *examResultRepository) AverageScoreSince(since time.Time) (*float64, error) {
	var avg *float64
	err := r.db.Model(&model.ExamResult{}).
		Select("AVG(score)").
		Where("status = ? AND completed_at >= ? AND score IS NOT NULL", model.ExamResultStatusCompleted, since).
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	return avg, nil
}
