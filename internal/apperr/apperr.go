package apperr

import (
	"errors"
	"net/http"
)

// Code is the machine-readable error kind surfaced to API clients.
type Code string

const (
	CodeUnknownAssessment  Code = "unknown_assessment"
	CodeInvalidAnswerValue Code = "invalid_answer_value"
	CodeNotCompleted       Code = "not_completed"
	CodeDuplicateEmail     Code = "duplicate_email"
	CodeUserNotFound       Code = "user_not_found"
	CodeInvalidCredentials Code = "invalid_credentials"
	CodeUnauthorized       Code = "unauthorized"
	CodeAssessmentNotFound Code = "assessment_not_found"
	CodeEmptyAnswerSet     Code = "empty_answer_set"
	CodePersistenceError   Code = "persistence_error"

	// Admin-only surface.
	CodeDuplicateAssessment Code = "duplicate_assessment"
)

// Error pairs a stable code with a human-readable message. Services return
// these for any failure a client is expected to act on; controllers map
// everything else to a plain 500.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return string(e.Code) + ": " + e.Message }

func New(code Code, msg string) *Error { return &Error{Code: code, Message: msg} }

func UnknownAssessment(msg string) *Error  { return New(CodeUnknownAssessment, msg) }
func InvalidAnswerValue(msg string) *Error { return New(CodeInvalidAnswerValue, msg) }
func NotCompleted(msg string) *Error       { return New(CodeNotCompleted, msg) }
func DuplicateEmail(msg string) *Error     { return New(CodeDuplicateEmail, msg) }
func UserNotFound(msg string) *Error       { return New(CodeUserNotFound, msg) }
func InvalidCredentials(msg string) *Error { return New(CodeInvalidCredentials, msg) }
func Unauthorized(msg string) *Error       { return New(CodeUnauthorized, msg) }
func AssessmentNotFound(msg string) *Error { return New(CodeAssessmentNotFound, msg) }
func EmptyAnswerSet(msg string) *Error     { return New(CodeEmptyAnswerSet, msg) }
func PersistenceError(msg string) *Error   { return New(CodePersistenceError, msg) }

func DuplicateAssessment(msg string) *Error { return New(CodeDuplicateAssessment, msg) }

// HTTPStatus maps an error code onto the status the REST layer responds with.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeUnauthorized, CodeInvalidCredentials:
		return http.StatusUnauthorized
	case CodeUserNotFound, CodeAssessmentNotFound, CodeUnknownAssessment:
		return http.StatusNotFound
	case CodeDuplicateEmail, CodeDuplicateAssessment:
		return http.StatusConflict
	case CodePersistenceError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// As unwraps err into an *Error when possible, so controllers can branch on
// the code without type switches at every call site.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
