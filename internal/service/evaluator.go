package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"calmroute/internal/directions"
	"calmroute/internal/domain"
)

// Phase is the orchestrator's externally observable phase.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

// EvaluationState is the externally observable state of an evaluator.
type EvaluationState struct {
	Phase  Phase
	Routes []domain.EnhancedRoute
	Error  string      // Caller-facing message; empty when no error
	Cached bool        // Whether the last success came from cache
	Source CacheSource // live or demo; empty before the first success
}

// Evaluator is the route evaluation orchestrator. It ties the fingerprint
// builder, response cache, directions gateway, route enhancer and fallback
// provider into one request/response cycle and owns the observable state
// for a caller session. Reusable across repeated requests; a newer
// Evaluate supersedes an older one still in flight.
type Evaluator struct {
	gateway  directions.Gateway
	cache    *RouteCache
	enhancer *RouteEnhancer

	mu      sync.Mutex
	state   EvaluationState
	seq     uint64
	subs    map[int]chan EvaluationState
	nextSub int
}

// NewEvaluator creates an evaluator in the idle phase.
func NewEvaluator(gateway directions.Gateway, cache *RouteCache, enhancer *RouteEnhancer) *Evaluator {
	return &Evaluator{
		gateway:  gateway,
		cache:    cache,
		enhancer: enhancer,
		state:    EvaluationState{Phase: PhaseIdle},
		subs:     make(map[int]chan EvaluationState),
	}
}

// Evaluate runs one evaluation cycle and returns the resulting state.
//
// Cache hits resolve synchronously. On a miss the gateway is consulted
// through the cache's single-flight guard; recoverable gateway failures
// silently select the fallback dataset, fatal ones surface as an error
// state with the provider's message preserved and the previous successful
// route list retained. If a newer Evaluate started while this one was in
// flight, the stale result is discarded on arrival.
func (e *Evaluator) Evaluate(ctx context.Context, req domain.RouteRequest) EvaluationState {
	fingerprint := Fingerprint(req)

	e.mu.Lock()
	e.seq++
	token := e.seq
	e.state.Phase = PhaseLoading
	e.state.Error = ""
	e.broadcastLocked()
	e.mu.Unlock()

	entry, fromCache, err := e.cache.Fetch(ctx, fingerprint, func() (CacheEntry, error) {
		rawRoutes, fetchErr := e.gateway.FetchRoutes(ctx, req)
		if fetchErr != nil {
			var gErr *directions.Error
			if errors.As(fetchErr, &gErr) && gErr.Recoverable() {
				log.Printf("directions gateway degraded, serving demo routes: %v", gErr)
				return CacheEntry{
					Routes:   DemoRoutes(),
					CachedAt: time.Now(),
					Source:   SourceDemo,
				}, nil
			}
			return CacheEntry{}, fetchErr
		}
		return CacheEntry{
			Routes:   e.enhancer.Enhance(rawRoutes),
			CachedAt: time.Now(),
			Source:   SourceLive,
		}, nil
	})

	e.mu.Lock()
	defer e.mu.Unlock()

	// Last request wins: a superseded call's result is discarded on arrival.
	if token != e.seq {
		return e.state
	}

	if err != nil {
		e.state.Phase = PhaseError
		e.state.Error = errorMessage(err)
		e.state.Cached = false
		// Routes keep the previous successful batch; a transient error must
		// not destroy already-rendered useful state.
		e.broadcastLocked()
		return e.state
	}

	e.state = EvaluationState{
		Phase:  PhaseSuccess,
		Routes: entry.Routes,
		Cached: fromCache,
		Source: entry.Source,
	}
	e.broadcastLocked()
	return e.state
}

// State returns the current observable state.
func (e *Evaluator) State() EvaluationState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// ClearError clears the error message without otherwise changing state.
func (e *Evaluator) ClearError() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Error = ""
	e.broadcastLocked()
}

// Reset forces the evaluator back to idle with an empty route list. It is
// an explicit caller action, never automatic.
func (e *Evaluator) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.seq++ // Invalidate any in-flight evaluation
	e.state = EvaluationState{Phase: PhaseIdle}
	e.broadcastLocked()
}

// Subscribe registers for state change notifications. The returned cancel
// function unregisters the subscriber and closes the channel. Slow
// subscribers miss intermediate states rather than blocking transitions.
func (e *Evaluator) Subscribe() (<-chan EvaluationState, func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextSub
	e.nextSub++
	ch := make(chan EvaluationState, 8)
	e.subs[id] = ch

	cancel := func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if sub, ok := e.subs[id]; ok {
			delete(e.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// broadcastLocked publishes the current state to subscribers. Caller holds mu.
func (e *Evaluator) broadcastLocked() {
	for _, ch := range e.subs {
		select {
		case ch <- e.state:
		default:
		}
	}
}

// errorMessage extracts the caller-facing message, preserving the
// provider's message for classified gateway errors.
func errorMessage(err error) string {
	var gErr *directions.Error
	if errors.As(err, &gErr) {
		return gErr.Message
	}
	return err.Error()
}
