package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID            uint    `gorm:"primarykey" json:"id"`
	PartID        uint    `json:"part_id" gorm:"not null;index"`
	ExamID        uint    `json:"exam_id" gorm:"not null;index"` // back-reference for direct lookup
	QuestionText  string  `json:"question_text" gorm:"type:text;not null"`
	OptionA       string  `json:"option_a" gorm:"type:text;not null"`
	OptionB       string  `json:"option_b" gorm:"type:text;not null"`
	OptionC       string  `json:"option_c" gorm:"type:text;not null"`
	OptionD       *string `json:"option_d,omitempty" gorm:"type:text"`
	CorrectAnswer string  `json:"correct_answer" gorm:"type:varchar(1);not null"` // A, B, C or D
	ImageFilename *string `json:"image_filename,omitempty" gorm:"type:varchar(255)"`
	// DisplayOrder is rewritten by expired exam assembly; nil means the
	// question has never been arranged and falls back to insertion order.
	DisplayOrder *int           `json:"display_order,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
