package chat

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"cafeteria/internal/models"

	"github.com/tmc/langchaingo/llms"
)

// FallbackReply is returned when the language model cannot be reached. The
// session stays usable for subsequent turns.
const FallbackReply = "Sorry, I'm having trouble connecting right now. Please try again later."

// Role identifies who produced a conversation turn
type Role string

const (
	RoleCustomer  Role = "customer"
	RoleAssistant Role = "assistant"
)

// Turn is a single exchange entry, immutable once appended
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Session mediates one customer's free-text exchange with the language model.
// The standing instructions (persona plus a menu snapshot) are fixed for the
// session's lifetime. A session enforces single-in-flight-request discipline:
// at most one Send may be outstanding at a time.
type Session struct {
	mu           sync.Mutex
	model        llms.Model
	instructions string
	history      []Turn
}

// NewSession starts a session with the given persona and menu snapshot
func NewSession(model llms.Model, persona string, menu []models.MenuItem) *Session {
	return &Session{
		model:        model,
		instructions: composeInstructions(persona, menu),
	}
}

// composeInstructions renders the persona and the current menu into the
// model's standing instructions. An empty menu renders as an empty block.
func composeInstructions(persona string, menu []models.MenuItem) string {
	lines := make([]string, len(menu))
	for i, item := range menu {
		lines[i] = fmt.Sprintf("- %s: $%.2f", item.Name, item.Price)
	}
	return fmt.Sprintf("%s\n\nHere is the current menu:\n%s", persona, strings.Join(lines, "\n"))
}

// Send appends a customer turn, requests a completion and appends the
// assistant's reply. Model failures are non-fatal: the fixed fallback string
// is returned and recorded instead of an error.
func (s *Session) Send(ctx context.Context, text string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, Turn{Role: RoleCustomer, Text: text})

	messages := make([]llms.MessageContent, 0, len(s.history)+1)
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, s.instructions))
	for _, turn := range s.history {
		role := llms.ChatMessageTypeHuman
		if turn.Role == RoleAssistant {
			role = llms.ChatMessageTypeAI
		}
		messages = append(messages, llms.TextParts(role, turn.Text))
	}

	reply := FallbackReply
	resp, err := s.model.GenerateContent(ctx, messages)
	if err != nil {
		log.Printf("Error sending message to model: %v", err)
	} else if len(resp.Choices) == 0 {
		log.Printf("Model returned no choices")
	} else {
		reply = resp.Choices[0].Content
	}

	s.history = append(s.history, Turn{Role: RoleAssistant, Text: reply})
	return reply
}

// History returns a copy of the turn history
func (s *Session) History() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := make([]Turn, len(s.history))
	copy(history, s.history)
	return history
}
