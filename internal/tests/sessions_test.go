package tests

import (
	"context"
	"errors"
	"testing"

	"calmroute/internal/domain"
	"calmroute/internal/service"
)

func TestSessionManager_Lifecycle(t *testing.T) {
	t.Parallel()

	gateway := &MockGateway{
		FetchFunc: func(ctx context.Context, req domain.RouteRequest) ([]domain.RawRoute, error) {
			return []domain.RawRoute{calmRawRoute()}, nil
		},
	}
	manager := service.NewSessionManager(func() *service.Evaluator {
		e, _ := newEvaluator(gateway)
		return e
	})

	id, created := manager.Create()
	if id == "" {
		t.Fatal("expected session id to be set")
	}
	if created.State().Phase != service.PhaseIdle {
		t.Errorf("expected new session to start idle, got %s", created.State().Phase)
	}

	got, err := manager.Get(id)
	if err != nil {
		t.Fatalf("expected session to be retrievable, got: %v", err)
	}
	if got != created {
		t.Error("expected Get to return the created evaluator")
	}

	manager.Delete(id)
	if _, err := manager.Get(id); !errors.Is(err, service.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestSessionManager_SessionsAreIsolated(t *testing.T) {
	t.Parallel()

	gateway := &MockGateway{
		FetchFunc: func(ctx context.Context, req domain.RouteRequest) ([]domain.RawRoute, error) {
			return []domain.RawRoute{calmRawRoute()}, nil
		},
	}
	manager := service.NewSessionManager(func() *service.Evaluator {
		e, _ := newEvaluator(gateway)
		return e
	})

	idA, evaluatorA := manager.Create()
	idB, evaluatorB := manager.Create()
	if idA == idB {
		t.Fatal("expected distinct session ids")
	}

	evaluatorA.Evaluate(context.Background(), testRequest())

	if evaluatorA.State().Phase != service.PhaseSuccess {
		t.Errorf("expected session A to be in success, got %s", evaluatorA.State().Phase)
	}
	if evaluatorB.State().Phase != service.PhaseIdle {
		t.Errorf("expected session B to stay idle, got %s", evaluatorB.State().Phase)
	}
}
