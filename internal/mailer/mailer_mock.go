package mailer

import "sync"

// SentMessage records one message handed to the mock mailer
type SentMessage struct {
	To      string
	Subject string
	Body    string
}

// MockMailer is an in-memory Mailer implementation for testing
type MockMailer struct {
	mu       sync.Mutex
	messages []SentMessage
	// FailWith makes every Send return this error when non-nil
	FailWith error
}

// NewMockMailer creates a new mock mailer
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

// Send records the message instead of delivering it
func (m *MockMailer) Send(to, subject, htmlBody string) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, SentMessage{To: to, Subject: subject, Body: htmlBody})
	return nil
}

// Messages returns a copy of everything sent so far
func (m *MockMailer) Messages() []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMessage, len(m.messages))
	copy(out, m.messages)
	return out
}
