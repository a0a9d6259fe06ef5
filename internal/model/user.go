package model

import (
	"time"

	"gorm.io/gorm"
)

// User is the account an attempt belongs to. Credentials are issued and
// verified by the external auth provider; this table only anchors foreign
// keys and existence checks.
type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `json:"name" gorm:"not null"`
	Email     string         `json:"email" gorm:"not null;uniqueIndex"`
	Role      string         `json:"role" gorm:"type:varchar(20);default:'user'"`
	Results   []ExamResult   `json:"results,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
