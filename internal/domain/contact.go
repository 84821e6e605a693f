package domain

import (
	"time"
)

type ContactSubject string

const (
	SubjectGeneral  ContactSubject = "general"
	SubjectMenu     ContactSubject = "menu"
	SubjectHours    ContactSubject = "hours"
	SubjectEvent    ContactSubject = "event"
	SubjectFeedback ContactSubject = "feedback"
	SubjectOther    ContactSubject = "other"
)

var subjectTitles = map[ContactSubject]string{
	SubjectGeneral:  "General Inquiry",
	SubjectMenu:     "Menu Question",
	SubjectHours:    "Hours/Location",
	SubjectEvent:    "Event/Catering",
	SubjectFeedback: "Feedback",
	SubjectOther:    "Other",
}

func (s ContactSubject) Title() string {
	if title, ok := subjectTitles[s]; ok {
		return title
	}
	return string(s)
}

type ContactSubmission struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Subject       ContactSubject `json:"subject"`
	CustomSubject string         `json:"custom_subject,omitempty"`
	Message       string         `json:"message"`
	Responded     bool           `json:"responded"`
	ResponseNotes string         `json:"response_notes,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// DisplaySubject — тема для показа: своя формулировка при subject=other,
// иначе стандартный заголовок категории.
func (c ContactSubmission) DisplaySubject() string {
	if c.Subject == SubjectOther && c.CustomSubject != "" {
		return c.CustomSubject
	}
	return c.Subject.Title()
}

type CreateContactSubmissionDTO struct {
	Name          string         `json:"name" binding:"required,max=100"`
	Email         string         `json:"email" binding:"required,email"`
	Subject       ContactSubject `json:"subject" binding:"required,oneof=general menu hours event feedback other"`
	CustomSubject string         `json:"custom_subject" binding:"omitempty,max=200"`
	Message       string         `json:"message" binding:"required"`
}

type RespondContactDTO struct {
	Responded     bool   `json:"responded"`
	ResponseNotes string `json:"response_notes"`
}

type ContactFilter struct {
	Responded *bool           `json:"responded"`
	Subject   *ContactSubject `json:"subject"`
	StartDate *time.Time      `json:"start_date"`
	EndDate   *time.Time      `json:"end_date"`
	Limit     int             `json:"limit"`
	Offset    int             `json:"offset"`
}
