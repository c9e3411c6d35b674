package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact is a contact form submission. CreatedDate is written once on insert.
type Contact struct {
	ID           uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name         string     `json:"name" db:"name" gorm:"type:varchar(100);not null"`
	Email        string     `json:"email" db:"email" gorm:"type:varchar(254);not null"`
	Subject      string     `json:"subject" db:"subject" gorm:"type:varchar(200);not null"`
	Message      string     `json:"message" db:"message" gorm:"type:text;not null"`
	CreatedDate  time.Time  `json:"created_date" db:"created_date" gorm:"<-:create;autoCreateTime;index"`
	Responded    bool       `json:"responded" db:"responded" gorm:"not null;default:false;index"`
	ResponseDate *time.Time `json:"response_date,omitempty" db:"response_date"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	c.Responded = false
	c.ResponseDate = nil
	return nil
}

// MarkResponded flags the submission as answered at the given time
func (c *Contact) MarkResponded(at time.Time) {
	c.Responded = true
	if c.ResponseDate == nil {
		c.ResponseDate = &at
	}
}
