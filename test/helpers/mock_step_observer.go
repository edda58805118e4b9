package helpers

import (
	"context"
	"sync"

	"github.com/andrescamacho/spaceempire-go/internal/application/game"
)

// MockStepObserver records every report it sees and can be told to fail
type MockStepObserver struct {
	mu      sync.Mutex
	reports []*game.StepReport
	err     error
}

// NewMockStepObserver creates a new MockStepObserver
func NewMockStepObserver() *MockStepObserver {
	return &MockStepObserver{}
}

// ObserveStep implements game.StepObserver
func (m *MockStepObserver) ObserveStep(ctx context.Context, report *game.StepReport) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reports = append(m.reports, report)
	return m.err
}

// SetError makes subsequent ObserveStep calls return err
func (m *MockStepObserver) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Reports returns the observed reports in order
func (m *MockStepObserver) Reports() []*game.StepReport {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*game.StepReport(nil), m.reports...)
}

// Last returns the most recent report or nil
func (m *MockStepObserver) Last() *game.StepReport {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.reports) == 0 {
		return nil
	}
	return m.reports[len(m.reports)-1]
}
