// Package auth simulates the login and signup flows. Nothing is sent
// anywhere: a submission only walks through its status timeline.
package auth

import (
	"errors"
	"strings"
	"time"
)

// MinPasswordLen is the shortest accepted password.
const MinPasswordLen = 6

// Submission timings.
const (
	LoginDelay  = 800 * time.Millisecond
	SignupDelay = 900 * time.Millisecond
	SuccessHold = 1500 * time.Millisecond
)

var (
	// ErrPasswordMismatch aborts a signup whose confirmation differs.
	ErrPasswordMismatch = errors.New("passwords need to match")
	// ErrMissingField reports an empty required field.
	ErrMissingField = errors.New("all fields are required")
	// ErrPasswordTooShort reports a password under MinPasswordLen.
	ErrPasswordTooShort = errors.New("password is too short")
)

// LoginForm holds the login inputs.
type LoginForm struct {
	Email    string
	Password string
	Remember bool
}

// Validate checks required fields and the password length.
func (f LoginForm) Validate() error {
	if strings.TrimSpace(f.Email) == "" || f.Password == "" {
		return ErrMissingField
	}
	if len([]rune(f.Password)) < MinPasswordLen {
		return ErrPasswordTooShort
	}
	return nil
}

// SignupForm holds the signup inputs.
type SignupForm struct {
	Name     string
	Email    string
	Password string
	Confirm  string
}

// Validate checks required fields and length, then the confirmation.
func (f SignupForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Email) == "" || f.Password == "" || f.Confirm == "" {
		return ErrMissingField
	}
	if len([]rune(f.Password)) < MinPasswordLen {
		return ErrPasswordTooShort
	}
	if f.Password != f.Confirm {
		return ErrPasswordMismatch
	}
	return nil
}

// Status is the phase of a simulated submission.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
)

// Submission walks idle -> submitting -> success -> idle.
type Submission struct {
	status Status
	delay  time.Duration
}

// NewSubmission returns an idle submission that stays in the submitting
// phase for delay.
func NewSubmission(delay time.Duration) *Submission {
	return &Submission{delay: delay}
}

// Status returns the current phase.
func (s *Submission) Status() Status {
	return s.status
}

// Busy reports whether a submission is in flight.
func (s *Submission) Busy() bool {
	return s.status == StatusSubmitting
}

// Submit validates the form and starts the timeline. It returns how long to
// wait before calling Advance. A failed validation changes nothing.
func (s *Submission) Submit(validate func() error) (time.Duration, error) {
	if s.Busy() {
		return 0, nil
	}
	if err := validate(); err != nil {
		return 0, err
	}
	s.status = StatusSubmitting
	return s.delay, nil
}

// Advance moves to the next phase and returns the wait before the next
// Advance, or 0 once idle again.
func (s *Submission) Advance() time.Duration {
	switch s.status {
	case StatusSubmitting:
		s.status = StatusSuccess
		return SuccessHold
	default:
		s.status = StatusIdle
		return 0
	}
}
