package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// Frequency is the delivery cadence of a subscription
type Frequency string

// delivery cadences
const (
	FrequencyImmediate Frequency = "immediate"
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
)

// Valid reports whether the frequency is a known cadence
func (f Frequency) Valid() bool {
	return f == FrequencyImmediate || f == FrequencyDaily || f == FrequencyWeekly
}

// VerificationState is the email-ownership axis of a subscription's state
type VerificationState string

// verification states
const (
	VerificationPending  VerificationState = "pending"
	VerificationVerified VerificationState = "verified"
)

// Subscription represents a subscriber's delivery preferences.
// State is two-axis: verification (pending/verified) and activity
// (active flag). Only verified and active subscriptions receive dispatch.
type Subscription struct {
	ID           int64
	Email        string // case-normalized, unique
	Name         string
	Categories   []string // empty means all categories
	Technologies []string // empty means no technology narrowing
	Frequency    Frequency
	MinSeverity  Severity // inclusive threshold
	LocalHour    int      // preferred local delivery hour, 0-23
	UTCOffset    float64  // subscriber timezone offset from UTC, half-hour zones supported
	Weekday      int      // preferred local weekday for weekly cadence, 0=Sunday
	Active       bool
	Verification VerificationState
	Token        string
	TokenExpires time.Time
	LastNotified time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Verified reports whether the subscription passed email verification
func (s *Subscription) Verified() bool {
	return s.Verification == VerificationVerified
}

// Dispatchable reports whether the subscription may receive notifications
func (s *Subscription) Dispatchable() bool {
	return s.Active && s.Verified()
}

// Verify moves the subscription to the verified state
func (s *Subscription) Verify() {
	s.Verification = VerificationVerified
}

// Deactivate turns delivery off, the unsubscribe transition
func (s *Subscription) Deactivate() {
	s.Active = false
}

// NormalizeEmail lower-cases and trims a contact address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks a contact address format. Display-name forms
// are rejected, the stored address must be the bare address itself.
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("invalid email address format")
	}
	return nil
}

// ValidateSubscription checks field formats and numeric ranges. Values
// are never coerced; out-of-range preferences are rejected outright.
func ValidateSubscription(s *Subscription) error {
	if err := ValidateEmail(s.Email); err != nil {
		return err
	}
	if !s.Frequency.Valid() {
		return fmt.Errorf("invalid frequency %q", s.Frequency)
	}
	if !s.MinSeverity.Valid() {
		return fmt.Errorf("invalid severity threshold %q", s.MinSeverity)
	}
	if s.LocalHour < 0 || s.LocalHour > 23 {
		return fmt.Errorf("preferred hour must be between 0 and 23, got %d", s.LocalHour)
	}
	if s.UTCOffset < -12 || s.UTCOffset > 14 {
		return fmt.Errorf("utc offset must be between -12 and +14, got %g", s.UTCOffset)
	}
	if s.Weekday < 0 || s.Weekday > 6 {
		return fmt.Errorf("weekday must be between 0 and 6, got %d", s.Weekday)
	}
	if len(s.Categories) > 20 {
		return fmt.Errorf("too many categories, max 20")
	}
	if len(s.Technologies) > 20 {
		return fmt.Errorf("too many technologies, max 20")
	}
	if len(s.Name) > 100 {
		return fmt.Errorf("name too long, max 100 characters")
	}
	return nil
}
