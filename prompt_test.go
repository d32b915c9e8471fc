package epitome_test

import (
	"errors"
	"testing"

	"github.com/epitome-ai/epitome"
)

func TestPromptDefaultSystemMessage(t *testing.T) {
	tests := []struct {
		name string
		docs []epitome.Document
	}{
		{name: "no documents", docs: nil},
		{name: "one document", docs: docs("alpha")},
		{name: "several documents", docs: docs("alpha", "beta", "gamma")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := epitome.NewSummarizeNode(&stubModel{}, nil)
			if err != nil {
				t.Fatalf("NewSummarizeNode() error = %v", err)
			}

			prompt := node.Prompt(epitome.State{Documents: tt.docs})
			if len(prompt) != 2 {
				t.Fatalf("Prompt() returned %d messages, want 2", len(prompt))
			}
			if prompt[0].Role != epitome.RoleSystem {
				t.Errorf("first message role = %q, want %q", prompt[0].Role, epitome.RoleSystem)
			}
			if prompt[0].Content != epitome.DefaultPrompt {
				t.Errorf("system content = %q, want DefaultPrompt", prompt[0].Content)
			}
			if prompt[1].Role != epitome.RoleUser {
				t.Errorf("second message role = %q, want %q", prompt[1].Role, epitome.RoleUser)
			}
		})
	}
}

func TestPromptCustomSystemMessage(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
	}{
		{name: "plain instruction", prompt: "Summarize in one sentence."},
		{name: "empty string is verbatim", prompt: ""},
		{name: "multiline", prompt: "Line one.\nLine two."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := epitome.NewSummarizeNode(&stubModel{}, tt.prompt)
			if err != nil {
				t.Fatalf("NewSummarizeNode() error = %v", err)
			}

			prompt := node.Prompt(epitome.State{Documents: docs("alpha")})
			if prompt[0].Content != tt.prompt {
				t.Errorf("system content = %q, want %q", prompt[0].Content, tt.prompt)
			}
		})
	}
}

func TestPromptDocumentJoin(t *testing.T) {
	tests := []struct {
		name string
		docs []epitome.Document
		want string
	}{
		{name: "empty list", docs: nil, want: ""},
		{name: "single document", docs: docs("alpha"), want: "alpha"},
		{name: "two documents", docs: docs("A", "B"), want: "A---\n\nB"},
		{name: "three documents", docs: docs("A", "B", "C"), want: "A---\n\nB---\n\nC"},
		{name: "empty contents keep separators", docs: docs("", ""), want: "---\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := epitome.NewSummarizeNode(&stubModel{}, nil)
			if err != nil {
				t.Fatalf("NewSummarizeNode() error = %v", err)
			}

			prompt := node.Prompt(epitome.State{Documents: tt.docs})
			if got := prompt[1].Content; got != tt.want {
				t.Errorf("user content = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPromptInvalidType(t *testing.T) {
	tests := []struct {
		name   string
		prompt any
	}{
		{name: "int", prompt: 42},
		{name: "float", prompt: 4.2},
		{name: "bool", prompt: true},
		{name: "slice", prompt: []string{"a"}},
		{name: "map", prompt: map[string]string{"role": "system"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := &stubModel{text: "S"}

			_, err := epitome.New(model, epitome.WithPrompt(tt.prompt))
			if !errors.Is(err, epitome.ErrInvalidPrompt) {
				t.Fatalf("New() error = %v, want ErrInvalidPrompt", err)
			}
			if model.calls() != 0 {
				t.Errorf("model was invoked %d times before configuration failed", model.calls())
			}
		})
	}
}
