package domain

import (
	"encoding/json"
	"time"
)

// Role distinguishes the two transcript authors.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Intent is the assistant-classified label of a reply.
type Intent string

const (
	IntentGreeting       Intent = "saudacao"
	IntentDiscoverStores Intent = "descobrir_lojas"
	IntentAddItem        Intent = "adicionar_item"
	IntentRemoveItem     Intent = "remover_item"
	IntentCheckout       Intent = "finalizar_pedido"
	IntentOrderStatus    Intent = "consultar_status"
)

// IntentData is the structured payload attached to an assistant reply,
// one variant per recognized intent. Unrecognized payloads are carried
// verbatim as UnknownData.
type IntentData interface {
	intentData()
}

// StoreDiscovery accompanies descobrir_lojas.
type StoreDiscovery struct {
	StoreType string `json:"storeType,omitempty"`
}

// ItemSelection accompanies adicionar_item and remover_item.
type ItemSelection struct {
	ProductName string `json:"productName,omitempty"`
	Quantity    int    `json:"quantity,omitempty"`
}

// UnknownData retains a payload the taxonomy does not cover.
type UnknownData struct {
	Raw json.RawMessage
}

func (StoreDiscovery) intentData() {}
func (ItemSelection) intentData()  {}
func (UnknownData) intentData()    {}

// MarshalJSON emits the raw payload unchanged.
func (u UnknownData) MarshalJSON() ([]byte, error) {
	if len(u.Raw) == 0 {
		return []byte("null"), nil
	}
	return u.Raw, nil
}

// Message is one chat-transcript entry. The transcript is append-only:
// entries are never edited in place.
type Message struct {
	ID          string     `json:"id"`
	Role        Role       `json:"role"`
	Content     string     `json:"content"`
	Timestamp   time.Time  `json:"timestamp"`
	Intent      Intent     `json:"intent,omitempty"`
	Data        IntentData `json:"data,omitempty"`
	Suggestions []string   `json:"suggestions,omitempty"`
}

// AssistantReply is the structured result of one external assistant call.
type AssistantReply struct {
	Intent      Intent
	Message     string
	Data        IntentData
	Suggestions []string
}
