package epitome_test

import (
	"context"
	"strings"
	"sync"

	"github.com/epitome-ai/epitome"
)

// stubModel returns a fixed response text and records every prompt it is
// sent. A non-nil err fails the invocation; a non-nil textErr fails the
// extraction step instead.
type stubModel struct {
	mu      sync.Mutex
	text    string
	err     error
	textErr error
	prompts [][]epitome.Message
}

func (m *stubModel) Invoke(ctx context.Context, messages []epitome.Message) (epitome.Response, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, messages)
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	return stubResponse{text: m.text, err: m.textErr}, nil
}

func (m *stubModel) InvokeAsync(ctx context.Context, messages []epitome.Message) <-chan epitome.Invocation {
	out := make(chan epitome.Invocation, 1)
	go func() {
		defer close(out)
		resp, err := m.Invoke(ctx, messages)
		out <- epitome.Invocation{Response: resp, Err: err}
	}()
	return out
}

func (m *stubModel) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

func (m *stubModel) lastPrompt() []epitome.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.prompts) == 0 {
		return nil
	}
	return m.prompts[len(m.prompts)-1]
}

type stubResponse struct {
	text string
	err  error
}

func (r stubResponse) Text() (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return r.text, nil
}

// echoModel summarizes by echoing the user message back, prefixed, so tests
// can tell runs apart.
type echoModel struct {
	stubModel
}

func (m *echoModel) Invoke(ctx context.Context, messages []epitome.Message) (epitome.Response, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, messages)
	m.mu.Unlock()

	var user string
	for _, msg := range messages {
		if msg.Role == epitome.RoleUser {
			user = msg.Content
		}
	}
	if m.err != nil && strings.Contains(user, "boom") {
		return nil, m.err
	}
	return stubResponse{text: "summary of " + user}, nil
}

func (m *echoModel) InvokeAsync(ctx context.Context, messages []epitome.Message) <-chan epitome.Invocation {
	out := make(chan epitome.Invocation, 1)
	go func() {
		defer close(out)
		resp, err := m.Invoke(ctx, messages)
		out <- epitome.Invocation{Response: resp, Err: err}
	}()
	return out
}

func docs(contents ...string) []epitome.Document {
	list := make([]epitome.Document, len(contents))
	for i, content := range contents {
		list[i] = epitome.Document{Content: content}
	}
	return list
}
