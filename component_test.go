package restclient

import (
	"context"
	"testing"

	"github.com/kbukum/restclient/component"
)

func TestComponent_Lifecycle(t *testing.T) {
	comp := NewComponent(Config{Name: "api", BaseURL: "http://host"})

	if comp.Name() != "api" {
		t.Errorf("expected name api, got %q", comp.Name())
	}
	if h := comp.Health(context.Background()); h.Status != component.StatusUnhealthy {
		t.Errorf("expected unhealthy before start, got %s", h.Status)
	}

	if err := comp.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comp.Client() == nil {
		t.Fatal("expected client after start")
	}
	if h := comp.Health(context.Background()); h.Status != component.StatusHealthy {
		t.Errorf("expected healthy after start, got %s", h.Status)
	}

	d := comp.Describe()
	if d.Type != "rest-client" || d.Details != "http://host" {
		t.Errorf("unexpected description: %+v", d)
	}

	if err := comp.Stop(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestComponent_StartInvalidConfig(t *testing.T) {
	comp := NewComponent(Config{})
	if err := comp.Start(context.Background()); err == nil {
		t.Error("expected error")
	}
}

func TestComponent_DefaultName(t *testing.T) {
	comp := NewComponent(Config{BaseURL: "http://host"})
	if comp.Name() != "rest" {
		t.Errorf("expected default name rest, got %q", comp.Name())
	}
}
