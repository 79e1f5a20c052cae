package gateway

import (
	"context"
	"sync"
)

// MockResult is a canned result for the MockClient.
type MockResult struct {
	Answer *Answer
	Err    error
}

// MockClient is a deterministic Client for testing.
// It returns canned results in FIFO order and records all requests.
type MockClient struct {
	mu      sync.Mutex
	results []MockResult
	Calls   []*Request
}

// NewMockClient creates a MockClient with the given canned results.
func NewMockClient(results ...MockResult) *MockClient {
	return &MockClient{results: results}
}

// Ask returns the next canned result or ErrGatewayUnavailable if the
// queue is empty.
func (m *MockClient) Ask(_ context.Context, req *Request) (*Answer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.results) == 0 {
		return nil, &ErrGatewayUnavailable{Err: nil}
	}

	result := m.results[0]
	m.results = m.results[1:]

	if result.Err != nil {
		return nil, result.Err
	}
	return result.Answer, nil
}

// Name returns "mock".
func (m *MockClient) Name() string {
	return "mock"
}

// AddResult appends a canned result to the queue.
func (m *MockClient) AddResult(result MockResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, result)
}

// CallCount returns the number of Ask calls made.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
