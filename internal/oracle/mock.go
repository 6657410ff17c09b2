package oracle

import (
	"context"
	"sync"

	"github.com/jwebster45206/resentcalc/pkg/mood"
	"github.com/jwebster45206/resentcalc/pkg/state"
)

// MockOracle is a scriptable Oracle for tests.
type MockOracle struct {
	CalculateFunc func(ctx context.Context, req Request) (*Response, error)
	GreetingFunc  func(ctx context.Context, hostility int, day state.Day) (*Response, error)

	// Track calls for testing
	CalculateCalls []Request
	GreetingCalls  []state.Day

	mu sync.Mutex // protects all fields above
}

var _ Oracle = (*MockOracle)(nil)

func NewMockOracle() *MockOracle {
	return &MockOracle{
		CalculateCalls: make([]Request, 0),
		GreetingCalls:  make([]state.Day, 0),
	}
}

func (m *MockOracle) Calculate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CalculateCalls = append(m.CalculateCalls, req)

	if m.CalculateFunc != nil {
		return m.CalculateFunc(ctx, req)
	}

	// Default behavior - echo the expression
	return enforce(&Response{Result: req.Expression, Comment: "Mock comment.", Mood: mood.Bored}, req.ForcedMood), nil
}

func (m *MockOracle) Greeting(ctx context.Context, hostility int, day state.Day) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.GreetingCalls = append(m.GreetingCalls, day)

	if m.GreetingFunc != nil {
		return m.GreetingFunc(ctx, hostility, day)
	}
	return DefaultGreeting(day), nil
}

// Calls returns how many calculations were requested.
func (m *MockOracle) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.CalculateCalls)
}
