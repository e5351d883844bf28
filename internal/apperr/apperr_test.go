package apperr

import (
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{Unauthorized("x"), http.StatusUnauthorized},
		{InvalidCredentials("x"), http.StatusUnauthorized},
		{UserNotFound("x"), http.StatusNotFound},
		{AssessmentNotFound("x"), http.StatusNotFound},
		{UnknownAssessment("x"), http.StatusNotFound},
		{DuplicateEmail("x"), http.StatusConflict},
		{DuplicateAssessment("x"), http.StatusConflict},
		{PersistenceError("x"), http.StatusInternalServerError},
		{InvalidAnswerValue("x"), http.StatusBadRequest},
		{EmptyAnswerSet("x"), http.StatusBadRequest},
		{NotCompleted("x"), http.StatusBadRequest},
	}
	for _, c := range cases {
		if got := c.err.HTTPStatus(); got != c.want {
			t.Fatalf("%s mapped to %d, want %d", c.err.Code, got, c.want)
		}
	}
}

func TestAsUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", DuplicateEmail("taken"))
	e, ok := As(wrapped)
	if !ok || e.Code != CodeDuplicateEmail {
		t.Fatalf("As(wrapped) = %v,%v", e, ok)
	}
	if _, ok := As(fmt.Errorf("plain")); ok {
		t.Fatal("As matched a plain error")
	}
}
