package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jisook325/tracker/internal/domain"
)

func TestSleepEventHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockService    *MockSleepEventService
		wantStatusCode int
	}{
		{
			name:           "with timestamp",
			body:           `{"type": "bed", "timestamp": "2024-01-01T23:00"}`,
			mockService:    &MockSleepEventService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "with date and minute",
			body:           `{"type": "wake", "date": "2024-01-02", "timeMinute": 420.7}`,
			mockService:    &MockSleepEventService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "minute zero is present",
			body:           `{"type": "wake", "date": "2024-01-02", "timeMinute": 0}`,
			mockService:    &MockSleepEventService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "date without minute",
			body:           `{"type": "wake", "date": "2024-01-02"}`,
			mockService:    &MockSleepEventService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "nothing but type",
			body:           `{"type": "wake"}`,
			mockService:    &MockSleepEventService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "unknown type",
			body:           `{"type": "nap", "timestamp": "2024-01-01T23:00"}`,
			mockService:    &MockSleepEventService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "malformed timestamp",
			body:           `{"type": "bed", "timestamp": "2024-01-01 23:00"}`,
			mockService:    &MockSleepEventService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "invalid JSON",
			body:           `{"type":`,
			mockService:    &MockSleepEventService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "store failure",
			body: `{"type": "bed", "timestamp": "2024-01-01T23:00"}`,
			mockService: &MockSleepEventService{
				recordFunc: func(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepEventRequest) (*domain.SleepEvent, error) {
					return nil, errors.New("disk full")
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewSleepEventHandler(tt.mockService, zap.NewNop())

			req := httptest.NewRequest(http.MethodPost, "/v1/sleep-events", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req = withUser(req, testUser(), nil)
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Create() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestSleepEventHandler_CreateResponse(t *testing.T) {
	handler := NewSleepEventHandler(&MockSleepEventService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/v1/sleep-events", bytes.NewBufferString(`{"type": "bed", "timestamp": "2024-01-01T23:00"}`))
	req = withUser(req, testUser(), nil)
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	var resp domain.SleepEventResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.OK || resp.Event.Type != domain.SleepEventBed || resp.Event.TimestampLocal != "2024-01-01T23:00" {
		t.Errorf("response = %+v", resp)
	}
}
