package model

import (
	"time"

	"gorm.io/gorm"
)

// ExamPart is one of the seven TOEIC sections of an exam. PartNumber is
// unique within its exam.
type ExamPart struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	ExamID         uint           `json:"exam_id" gorm:"not null;index;uniqueIndex:idx_exam_part_number"`
	PartNumber     int            `json:"part_number" gorm:"not null;uniqueIndex:idx_exam_part_number"` // 1-7
	Description    string         `json:"description,omitempty" gorm:"type:text"`
	TotalQuestions int            `json:"total_questions" gorm:"not null"`
	Questions      []Question     `json:"questions,omitempty" gorm:"foreignKey:PartID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
