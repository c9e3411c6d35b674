package models

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill is a resume entry shown on the about page
type Skill struct {
	ID              uuid.UUID     `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name            string        `json:"name" db:"name" gorm:"type:varchar(100);not null"`
	Category        SkillCategory `json:"category" db:"category" gorm:"type:varchar(50);not null;index"`
	Proficiency     Proficiency   `json:"proficiency" db:"proficiency" gorm:"type:varchar(20);not null"`
	YearsExperience float64       `json:"years_experience" db:"years_experience" gorm:"type:decimal(3,1);not null;default:0"`
	Description     string        `json:"description" db:"description" gorm:"type:text"`
	ShowOnResume    *bool         `json:"show_on_resume" db:"show_on_resume" gorm:"not null;default:true;index"`
}

func (s *Skill) BeforeSave(tx *gorm.DB) error {
	if s.YearsExperience < 0 {
		return errors.New("years_experience cannot be negative")
	}
	return nil
}

// OnResume reports whether the skill is listed publicly, nil means the
// column default (shown)
func (s *Skill) OnResume() bool {
	return s.ShowOnResume == nil || *s.ShowOnResume
}

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	return nil
}
