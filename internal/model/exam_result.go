package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	ExamResultStatusInProgress = "IN_PROGRESS"
	ExamResultStatusCompleted  = "COMPLETED"
	ExamResultStatusCancelled  = "CANCELLED"
)

// ExamResult records one attempt of one user at one exam.
type ExamResult struct {
	ID                  uint           `gorm:"primarykey" json:"id"`
	UserID              uint           `json:"user_id" gorm:"not null;index"`
	ExamID              uint           `json:"exam_id" gorm:"not null;index"`
	Score               int            `json:"score"`
	ListeningScore      int            `json:"listening_score"` // parts 1-4
	ReadingScore        int            `json:"reading_score"`   // parts 5-7
	CorrectAnswers      int            `json:"correct_answers"`
	WrongAnswers        int            `json:"wrong_answers"`
	UnansweredQuestions int            `json:"unanswered_questions"`
	TotalQuestions      int            `json:"total_questions"`
	CompletedTime       int            `json:"completed_time"` // minutes
	Status              string         `json:"status" gorm:"type:varchar(20);not null;default:'IN_PROGRESS'"`
	CompletedAt         *time.Time     `json:"completed_at,omitempty"`
	Details             []Detail       `json:"details,omitempty" gorm:"foreignKey:ExamResultID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}
