package model

import (
	"time"

	"github.com/deppfellow/estate-listings/internal/validation"
)

// Agent is a member of the agency's sales team.
//
// Agents are never physically removed: properties keep a foreign key to
// them, so deletion flips IsActive instead.
type Agent struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Telegram        string    `json:"telegram"`
	Avatar          string    `json:"avatar"`
	Bio             string    `json:"bio"`
	ExperienceYears int       `json:"experienceYears"`
	Rating          float64   `json:"rating"`
	PropertiesSold  int       `json:"propertiesSold"`
	Specialties     []string  `json:"specialties"`
	Languages       []string  `json:"languages"`
	Education       string    `json:"education"`
	Certifications  []string  `json:"certifications"`
	Achievements    []string  `json:"achievements"`
	Location        string    `json:"location"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// EnsureLists replaces nil list fields with empty lists.
func (a *Agent) EnsureLists() {
	a.Specialties = orEmpty(a.Specialties)
	a.Languages = orEmpty(a.Languages)
	a.Certifications = orEmpty(a.Certifications)
	a.Achievements = orEmpty(a.Achievements)
}

// AgentSummary is the reduced agent projection embedded in property reads.
// Internal fields (education, sales counts, timestamps) are left out.
type AgentSummary struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	Avatar          string   `json:"avatar"`
	Email           string   `json:"email,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	Specialties     []string `json:"specialties,omitempty"`
	Languages       []string `json:"languages,omitempty"`
	ExperienceYears int      `json:"experienceYears,omitempty"`
	Rating          float64  `json:"rating,omitempty"`
	IsActive        bool     `json:"isActive"`
}

// Summary projects the agent for a property detail read.
func (a Agent) Summary() *AgentSummary {
	return &AgentSummary{
		ID:              a.ID,
		Name:            a.Name,
		Phone:           a.Phone,
		Avatar:          a.Avatar,
		Email:           a.Email,
		Bio:             a.Bio,
		Specialties:     a.Specialties,
		Languages:       a.Languages,
		ExperienceYears: a.ExperienceYears,
		Rating:          a.Rating,
		IsActive:        a.IsActive,
	}
}

// Minimal keeps only id, name, phone, avatar and the active flag, for lists.
func (s *AgentSummary) Minimal() *AgentSummary {
	if s == nil {
		return nil
	}
	return &AgentSummary{
		ID:       s.ID,
		Name:     s.Name,
		Phone:    s.Phone,
		Avatar:   s.Avatar,
		IsActive: s.IsActive,
	}
}

// AgentListItem is the public agent directory projection.
type AgentListItem struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Role            string   `json:"role"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
	Avatar          string   `json:"avatar"`
	ExperienceYears int      `json:"experienceYears"`
	Rating          float64  `json:"rating"`
	Specialties     []string `json:"specialties"`
	Languages       []string `json:"languages"`
}

// ListItem projects the agent for GET /agents.
func (a Agent) ListItem() AgentListItem {
	return AgentListItem{
		ID:              a.ID,
		Name:            a.Name,
		Role:            a.Role,
		Phone:           a.Phone,
		Email:           a.Email,
		Avatar:          a.Avatar,
		ExperienceYears: a.ExperienceYears,
		Rating:          a.Rating,
		Specialties:     orEmpty(a.Specialties),
		Languages:       orEmpty(a.Languages),
	}
}

// AgentInput is the write payload for creating and updating agents.
type AgentInput struct {
	Name            string   `json:"name"`
	Role            string   `json:"role"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Telegram        string   `json:"telegram"`
	Avatar          string   `json:"avatar"`
	Bio             string   `json:"bio"`
	ExperienceYears *int     `json:"experienceYears"`
	Rating          *float64 `json:"rating"`
	PropertiesSold  *int     `json:"propertiesSold"`
	Specialties     []string `json:"specialties"`
	Languages       []string `json:"languages"`
	Education       string   `json:"education"`
	Certifications  []string `json:"certifications"`
	Achievements    []string `json:"achievements"`
	Location        string   `json:"location"`
}

// Validate requires name, email and phone, and bounds rating to 0–5.
func (in *AgentInput) Validate() error {
	var fields validation.CustomValidationErrors

	fields.Require("name", trim(in.Name) != "")
	fields.Require("email", trim(in.Email) != "")
	fields.Require("phone", trim(in.Phone) != "")

	if email := trim(in.Email); email != "" && validation.Var(email, "email") != nil {
		fields.Add("email", "must be a valid email address")
	}
	if in.Rating != nil && (*in.Rating < 0 || *in.Rating > 5) {
		fields.Add("rating", "must be between 0 and 5")
	}
	if in.ExperienceYears != nil && *in.ExperienceYears < 0 {
		fields.Add("experienceYears", "must not be negative")
	}
	if in.PropertiesSold != nil && *in.PropertiesSold < 0 {
		fields.Add("propertiesSold", "must not be negative")
	}

	return fields.Err()
}

// Apply copies a validated input onto a. IsActive is left untouched.
func (in *AgentInput) Apply(a *Agent) {
	a.Name = trim(in.Name)
	a.Role = trim(in.Role)
	a.Email = trim(in.Email)
	a.Phone = trim(in.Phone)
	a.Telegram = trim(in.Telegram)
	a.Avatar = trim(in.Avatar)
	a.Bio = trim(in.Bio)
	a.ExperienceYears = 0
	if in.ExperienceYears != nil {
		a.ExperienceYears = *in.ExperienceYears
	}
	a.Rating = 0
	if in.Rating != nil {
		a.Rating = *in.Rating
	}
	a.PropertiesSold = 0
	if in.PropertiesSold != nil {
		a.PropertiesSold = *in.PropertiesSold
	}
	a.Specialties = cleanList(in.Specialties)
	a.Languages = cleanList(in.Languages)
	a.Education = trim(in.Education)
	a.Certifications = cleanList(in.Certifications)
	a.Achievements = cleanList(in.Achievements)
	a.Location = trim(in.Location)
}
