package model

import (
	"time"

	"gorm.io/gorm"
)

// Detail is the per-question grading record of an attempt. CorrectAnswer is
// snapshotted at grading time so later question edits do not rewrite history.
type Detail struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	ExamResultID   uint           `json:"exam_result_id" gorm:"not null;index"`
	QuestionID     uint           `json:"question_id" gorm:"not null;index"`
	SelectedAnswer *string        `json:"selected_answer,omitempty" gorm:"type:varchar(1)"`
	CorrectAnswer  string         `json:"correct_answer" gorm:"type:varchar(1);not null"`
	Score          int            `json:"score" gorm:"not null;default:0"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
