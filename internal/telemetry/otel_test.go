package telemetry

import (
	"context"
	"testing"

	"github.com/jisook325/tracker/internal/config"
)

func TestInitTracer_NoEndpointIsNoop(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), &config.Config{ServiceName: "tracker-api"})
	if err != nil {
		t.Fatalf("InitTracer() error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown() error: %v", err)
	}
}
