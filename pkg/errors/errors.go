package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeFetch represents listing or detail page fetch failures
	ErrorTypeFetch ErrorType = "fetch"
	// ErrorTypeRateLimit represents upstream rate limiting
	ErrorTypeRateLimit ErrorType = "rate_limit"
	// ErrorTypeExtraction represents a mandatory field the selectors could not resolve
	ErrorTypeExtraction ErrorType = "extraction"
	// ErrorTypeParse represents normalizer failures on raw extracted text
	ErrorTypeParse ErrorType = "parse"
	// ErrorTypeDelivery represents chat API delivery failures
	ErrorTypeDelivery ErrorType = "delivery"
	// ErrorTypeState represents rotation-state file errors
	ErrorTypeState ErrorType = "state"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
)

// BotError represents a pipeline error with its section context
type BotError struct {
	Type    ErrorType
	Section string
	Message string
	Err     error
	Time    time.Time
}

// Error implements the error interface
func (e *BotError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Section, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Section, e.Message)
}

// Unwrap returns the underlying error
func (e *BotError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether the error should abort the whole run.
// Nothing in this system escalates past the section boundary; a run
// where every section failed is degraded, not crashed.
func (e *BotError) IsFatal() bool {
	return false
}

// New creates a new BotError
func New(errType ErrorType, section, message string, err error) *BotError {
	return &BotError{
		Type:    errType,
		Section: section,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewFetch creates a new fetch error
func NewFetch(section, message string, err error) *BotError {
	return New(ErrorTypeFetch, section, message, err)
}

// NewRateLimit creates a new rate limit error
func NewRateLimit(section string, duration time.Duration) *BotError {
	message := fmt.Sprintf("rate limited for %v", duration)
	return New(ErrorTypeRateLimit, section, message, nil)
}

// NewExtraction creates a new extraction error
func NewExtraction(section, message string) *BotError {
	return New(ErrorTypeExtraction, section, message, nil)
}

// NewParse creates a new parse error
func NewParse(section, message string, err error) *BotError {
	return New(ErrorTypeParse, section, message, err)
}

// NewDelivery creates a new delivery error
func NewDelivery(section, message string, err error) *BotError {
	return New(ErrorTypeDelivery, section, message, err)
}

// NewState creates a new rotation-state error
func NewState(message string, err error) *BotError {
	return New(ErrorTypeState, "", message, err)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *BotError {
	return New(ErrorTypeConfiguration, "", message, err)
}

// TypeOf returns the error type of err, or "" when err is not a BotError
func TypeOf(err error) ErrorType {
	var be *BotError
	if errors.As(err, &be) {
		return be.Type
	}
	return ""
}
