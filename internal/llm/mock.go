package llm

import "context"

// MockClient allows tests to run without a real generation backend.
type MockClient struct {
	Response string
	Err      error

	Calls   int
	LastReq GenerationRequest
}

func (m *MockClient) Generate(_ context.Context, req GenerationRequest) (string, error) {
	m.Calls++
	m.LastReq = req
	return m.Response, m.Err
}
