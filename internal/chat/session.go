package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"foodhub/internal/assistant"
	"foodhub/internal/domain"
)

// ErrBusy is returned when SendMessage is invoked while a previous call
// is still awaiting the external assistant.
var ErrBusy = errors.New("assistant call already in progress")

// Assistant is the external generative service behind the session.
type Assistant interface {
	Process(ctx context.Context, apiKey, message string) (*domain.AssistantReply, error)
}

// IDFunc produces message ids. Injectable so tests control id assignment.
type IDFunc func() string

const (
	greetingText    = "Olá! Sou seu assistente do FoodHub. Como posso ajudar você hoje?"
	missingKeyText  = "Por favor, configure sua chave da API do Gemini primeiro."
	overloadedText  = "O serviço do Gemini está temporariamente sobrecarregado. Tente novamente em alguns minutos."
	badKeyText      = "Chave da API inválida. Verifique sua API key do Gemini."
	badRequestText  = "Requisição inválida. Verifique os parâmetros enviados."
	genericFailText = "Desculpe, ocorreu um erro ao processar sua mensagem. Verifique sua chave da API e tente novamente."
)

var (
	greetingSuggestions = []string{"Quero uma pizza", "Ver açaiterias", "Buscar hambúrguer"}
	retrySuggestions    = []string{"Tentar novamente", "Verificar API key"}
)

// Session holds the chat transcript and the loading state of the last
// assistant call. The transcript is append-only; it only shrinks on
// ClearChat. Assistant failures never escape SendMessage: each failure
// class becomes a transcript entry instead.
type Session struct {
	mu        sync.Mutex
	messages  []domain.Message
	loading   bool
	apiKey    string
	assistant Assistant
	greet     bool
	newID     IDFunc
	now       func() time.Time
}

// NewSession builds a Session over the given assistant. When greet is
// true the transcript starts with (and ClearChat restores) the standard
// greeting; otherwise it starts empty. Nil newID/now fall back to random
// UUIDs and the wall clock.
func NewSession(a Assistant, greet bool, newID IDFunc, now func() time.Time) *Session {
	if newID == nil {
		newID = uuid.NewString
	}
	if now == nil {
		now = time.Now
	}
	s := &Session{assistant: a, greet: greet, newID: newID, now: now}
	s.reset()
	return s
}

// SetAPIKey installs the runtime credential for the external assistant.
// The key lives only in session memory.
func (s *Session) SetAPIKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiKey = key
}

// Messages returns a snapshot copy of the transcript.
func (s *Session) Messages() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Loading reports whether an assistant call is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// SendMessage appends the user's text and the assistant's reply to the
// transcript. Without a configured credential it appends only an
// instruction to configure one and performs no external call. While a
// call is in flight further invocations fail with ErrBusy. The loading
// flag clears on every exit path.
func (s *Session) SendMessage(ctx context.Context, text string) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return ErrBusy
	}
	if strings.TrimSpace(s.apiKey) == "" {
		s.append(domain.Message{Role: domain.RoleAssistant, Content: missingKeyText})
		s.mu.Unlock()
		return nil
	}
	key := s.apiKey
	s.append(domain.Message{Role: domain.RoleUser, Content: text})
	s.loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	reply, err := s.assistant.Process(ctx, key, text)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.append(failureMessage(err))
		return nil
	}
	s.append(domain.Message{
		Role:        domain.RoleAssistant,
		Content:     reply.Message,
		Intent:      reply.Intent,
		Data:        reply.Data,
		Suggestions: reply.Suggestions,
	})
	return nil
}

// ClearChat resets the transcript to its initial state.
func (s *Session) ClearChat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Session) reset() {
	s.messages = nil
	if s.greet {
		s.messages = []domain.Message{{
			ID:          "welcome",
			Role:        domain.RoleAssistant,
			Content:     greetingText,
			Timestamp:   s.now(),
			Intent:      domain.IntentGreeting,
			Suggestions: greetingSuggestions,
		}}
	}
}

// append stamps id and timestamp; callers hold the lock.
func (s *Session) append(msg domain.Message) {
	msg.ID = s.newID()
	msg.Timestamp = s.now()
	s.messages = append(s.messages, msg)
}

func failureMessage(err error) domain.Message {
	content := genericFailText
	switch {
	case errors.Is(err, assistant.ErrOverloaded):
		content = overloadedText
	case errors.Is(err, assistant.ErrUnauthorized):
		content = badKeyText
	case errors.Is(err, assistant.ErrBadRequest):
		content = badRequestText
	}
	return domain.Message{
		Role:        domain.RoleAssistant,
		Content:     content,
		Suggestions: retrySuggestions,
	}
}
