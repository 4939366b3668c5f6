package models

import (
	"time"

	"github.com/google/uuid"
)

// SkillLevel is the self-reported playing level used for filtering
type SkillLevel string

const (
	// SkillLevelAll is a listing filter sentinel; profiles never carry it
	SkillLevelAll          SkillLevel = "all"
	SkillLevelBeginner     SkillLevel = "beginner"
	SkillLevelIntermediate SkillLevel = "intermediate"
	SkillLevelAdvanced     SkillLevel = "advanced"
	SkillLevelPro          SkillLevel = "pro"
)

// Profile is a user's public tennis-player listing
type Profile struct {
	ID                uuid.UUID  `json:"id"`
	UserID            uuid.UUID  `json:"user_id"`
	City              string     `json:"city"`
	SkillLevel        SkillLevel `json:"skill_level"`
	Bio               *string    `json:"bio"`
	Availability      []string   `json:"availability"`
	LookingForPartner bool       `json:"looking_for_partner"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`

	// User is populated on reads that join the owning account
	User *User `json:"user,omitempty"`
}
