package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"foodhub/internal/chat"
	"foodhub/internal/domain"
)

type sendMessageRequest struct {
	Message string `json:"message"`
}

type apiKeyRequest struct {
	APIKey string `json:"apiKey"`
}

type chatResponse struct {
	Messages  []domain.Message `json:"messages"`
	IsLoading bool             `json:"isLoading"`
}

func registerChatRoutes(api *gin.RouterGroup, session ConversationSession) {
	group := api.Group("/chat")
	group.GET("/messages", getMessagesHandler(session))
	group.POST("/messages", sendMessageHandler(session))
	group.DELETE("/messages", clearChatHandler(session))
	group.PUT("/key", setAPIKeyHandler(session))
}

func getMessagesHandler(session ConversationSession) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, toChatResponse(session))
	}
}

func sendMessageHandler(session ConversationSession) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "message required"})
			return
		}
		if err := session.SendMessage(c.Request.Context(), req.Message); err != nil {
			if errors.Is(err, chat.ErrBusy) {
				c.JSON(http.StatusConflict, gin.H{"message": "assistant call already in progress"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "could not process message"})
			return
		}
		c.JSON(http.StatusOK, toChatResponse(session))
	}
}

func clearChatHandler(session ConversationSession) gin.HandlerFunc {
	return func(c *gin.Context) {
		session.ClearChat()
		c.JSON(http.StatusOK, toChatResponse(session))
	}
}

func setAPIKeyHandler(session ConversationSession) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req apiKeyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "apiKey required"})
			return
		}
		session.SetAPIKey(req.APIKey)
		c.Status(http.StatusNoContent)
	}
}

func toChatResponse(session ConversationSession) chatResponse {
	msgs := session.Messages()
	if msgs == nil {
		msgs = []domain.Message{}
	}
	return chatResponse{Messages: msgs, IsLoading: session.Loading()}
}
