package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"foodhub/internal/domain"
)

// Failure classes recognized from the external call. The chat session
// maps each to a distinct user-facing transcript message.
var (
	// ErrOverloaded means the service reported itself temporarily unavailable.
	ErrOverloaded = errors.New("assistant temporarily overloaded")
	// ErrUnauthorized means the supplied API credential was rejected.
	ErrUnauthorized = errors.New("assistant credential rejected")
	// ErrBadRequest means the service rejected the request as malformed.
	ErrBadRequest = errors.New("assistant request malformed")
)

const defaultEndpointFormat = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

const systemPrompt = `Você é um assistente de marketplace de comida brasileiro que ajuda clientes a fazer pedidos.

Identifique a intenção do usuário e responda SEMPRE com JSON estruturado válido:
{
  "intent": "descobrir_lojas | adicionar_item | remover_item | finalizar_pedido | consultar_status | saudacao",
  "message": "Resposta amigável e natural em português brasileiro",
  "data": { "storeType": "tipo_de_loja", "productName": "nome_do_produto", "quantity": 1 },
  "suggestions": ["sugestão 1", "sugestão 2", "sugestão 3"]
}

Intents disponíveis:
- saudacao: quando o usuário cumprimenta ou inicia conversa
- descobrir_lojas: quando quer encontrar lojas ou tipos de comida (pizzaria, açaiteria, etc)
- adicionar_item: quando quer adicionar produtos específicos ao carrinho
- remover_item: quando quer remover produtos do carrinho
- finalizar_pedido: quando quer fechar/finalizar o pedido
- consultar_status: quando quer saber status do pedido

Seja natural, amigável e use linguagem brasileira. Sugira produtos e lojas populares.
Sempre responda em JSON válido, sem texto adicional.`

// DefaultSuggestions is the quick-reply set used when the model reply
// could not be parsed as the structured contract.
var DefaultSuggestions = []string{"Ver pizzarias", "Buscar açaí", "Ver promoções"}

// Client calls the hosted generative-language endpoint and translates its
// replies into the structured assistant contract.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

// NewClient builds a Client. An empty endpoint selects the hosted
// endpoint for the given model; timeout bounds each call so a hung
// request cannot hang the session's loading state forever.
func NewClient(endpoint, model string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = fmt.Sprintf(defaultEndpointFormat, model)
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
	}
}

type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig generationConfig  `json:"generationConfig"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []generatePart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type wireReply struct {
	Intent      string          `json:"intent"`
	Message     string          `json:"message"`
	Data        json.RawMessage `json:"data,omitempty"`
	Suggestions []string        `json:"suggestions,omitempty"`
}

// Process sends the user message under the fixed system instruction and
// returns the structured reply. Transport and HTTP-status failures are
// classified into the sentinel errors above; an unparseable model reply
// is not an error and degrades to a saudacao reply carrying the raw text.
func (c *Client) Process(ctx context.Context, apiKey, message string) (*domain.AssistantReply, error) {
	body := generateRequest{
		Contents: []generateContent{
			{Parts: []generatePart{{Text: systemPrompt + "\n\nUsuário: " + message}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			MaxOutputTokens: 1000,
			TopP:            0.8,
			TopK:            40,
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"?key="+url.QueryEscape(apiKey), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call assistant: %w", err)
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp.StatusCode); err != nil {
		return nil, err
	}

	var envelope generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(envelope.Candidates) == 0 || len(envelope.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("empty assistant response")
	}

	return parseReply(envelope.Candidates[0].Content.Parts[0].Text), nil
}

func classifyStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusServiceUnavailable || code == http.StatusTooManyRequests:
		return fmt.Errorf("%w (status %d)", ErrOverloaded, code)
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%w (status %d)", ErrUnauthorized, code)
	case code == http.StatusBadRequest:
		return fmt.Errorf("%w (status %d)", ErrBadRequest, code)
	default:
		return fmt.Errorf("assistant call failed with status %d", code)
	}
}

// parseReply decodes the model text into the structured contract. Models
// often wrap JSON in markdown fences; those are stripped first.
func parseReply(text string) *domain.AssistantReply {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	var wire wireReply
	if err := json.Unmarshal([]byte(clean), &wire); err != nil || wire.Message == "" {
		fallback := strings.TrimSpace(text)
		if fallback == "" {
			fallback = "Olá! Como posso ajudar você hoje?"
		}
		return &domain.AssistantReply{
			Intent:      domain.IntentGreeting,
			Message:     fallback,
			Suggestions: DefaultSuggestions,
		}
	}

	return &domain.AssistantReply{
		Intent:      domain.Intent(wire.Intent),
		Message:     wire.Message,
		Data:        decodeIntentData(domain.Intent(wire.Intent), wire.Data),
		Suggestions: wire.Suggestions,
	}
}

func decodeIntentData(intent domain.Intent, raw json.RawMessage) domain.IntentData {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	switch intent {
	case domain.IntentDiscoverStores:
		var data domain.StoreDiscovery
		if err := json.Unmarshal(raw, &data); err == nil {
			return data
		}
	case domain.IntentAddItem, domain.IntentRemoveItem:
		var data domain.ItemSelection
		if err := json.Unmarshal(raw, &data); err == nil {
			return data
		}
	}
	return domain.UnknownData{Raw: raw}
}
