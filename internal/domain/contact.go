package domain

import (
	"errors"
	"time"
)

// ContactRequestDTO represents the expected request body of the contact form.
// Website is a honeypot field that real visitors never see.
type ContactRequestDTO struct {
	Name    string `json:"name" binding:"required,max=120"`
	Email   string `json:"email" binding:"required,email,max=254"`
	Phone   string `json:"phone" binding:"omitempty,max=40"`
	Message string `json:"message" binding:"required,max=5000"`
	Website string `json:"website"`
}

// ContactResponseDTO is returned once a submission has been accepted.
type ContactResponseDTO struct {
	ID         string `json:"id"`
	ReceivedAt string `json:"received_at"`
	Message    string `json:"message"`
}

// ListContactResponseDTO represents the admin listing of submissions.
type ListContactResponseDTO struct {
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
	Items []ContactSubmission `json:"items"`
}

// ContactSubmission is an accepted contact form entry.
type ContactSubmission struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Message    string    `json:"message"`
	IP         string    `json:"ip,omitempty"`
	UserAgent  string    `json:"user_agent,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}

// ClientMeta describes who sent a submission.
type ClientMeta struct {
	IP        string
	UserAgent string
}

var (
	// ErrSpamDetected is returned when a submission trips the spam filter.
	ErrSpamDetected = errors.New("spam detected")
)
