package problem

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewAndWithErrors(t *testing.T) {
	fieldErrors := []FieldError{{Field: "mood", Message: "is required"}}
	p := New(http.StatusUnprocessableEntity, "validation-error", "Validation Error", "details").WithErrors(fieldErrors)

	if got, want := p.Type, BaseURI+"/validation-error"; got != want {
		t.Fatalf("unexpected type: got %q want %q", got, want)
	}
	if p.Status != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected status: %d", p.Status)
	}
	if len(p.Errors) != 1 || p.Errors[0] != fieldErrors[0] {
		t.Fatalf("errors not set: %+v", p.Errors)
	}
}

func TestProblemWrite(t *testing.T) {
	resp := httptest.NewRecorder()
	Unauthorized("bad signature").Write(resp)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Type"); got != ContentType {
		t.Fatalf("missing content type: %s", got)
	}

	var decoded Problem
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if decoded.Title != "Unauthorized" || decoded.Detail != "bad signature" {
		t.Fatalf("unexpected payload: %+v", decoded)
	}
}

func TestProblemError(t *testing.T) {
	if got := BadRequest("invalid date").Error(); got != "Bad Request: invalid date" {
		t.Fatalf("Error() = %q", got)
	}
	if got := New(http.StatusTeapot, "teapot", "Teapot", "").Error(); got != "Teapot" {
		t.Fatalf("Error() without detail = %q", got)
	}
}
