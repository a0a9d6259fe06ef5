package model

import (
	"time"

	"gorm.io/gorm"
)

type Exam struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	Title          string         `json:"title" gorm:"not null"`
	Duration       int            `json:"duration" gorm:"not null"` // minutes
	TotalQuestions int            `json:"total_questions" gorm:"default:200"`
	Audio          *string        `json:"audio,omitempty"`
	Parts          []ExamPart     `json:"parts,omitempty" gorm:"foreignKey:ExamID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
