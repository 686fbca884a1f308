package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"foodhub/internal/domain"
)

// CartStore is the active cart as the HTTP layer consumes it.
type CartStore interface {
	AddItem(line domain.CartLine) domain.CartLine
	UpdateQuantity(lineID string, quantity int)
	RemoveItem(lineID string)
	Clear()
	Lines() []domain.CartLine
	TotalItems() int
	TotalPriceCents() int64
	GroupByStore() []domain.StoreGroup
}

// OrderAggregator turns cart snapshots into orders and tracks the current one.
type OrderAggregator interface {
	CreateOrder(snapshot []domain.CartLine) (*domain.MasterOrder, error)
	Current() *domain.MasterOrder
	UpdateSubOrderStatus(subOrderID string, status domain.SubOrderStatus)
	UpdateStatus(status domain.MasterOrderStatus)
}

// ConversationSession is the chat transcript plus its loading state.
type ConversationSession interface {
	SendMessage(ctx context.Context, text string) error
	Messages() []domain.Message
	Loading() bool
	SetAPIKey(key string)
	ClearChat()
}

// StoreCatalog is the read-only storefront listing.
type StoreCatalog interface {
	Stores(category string) []domain.Store
	Store(id string) (*domain.Store, error)
	Products(storeID, category string) []domain.Product
}

// Deps carries the state containers the handlers operate on. Handlers
// receive them explicitly; nothing is looked up ambiently.
type Deps struct {
	Cart    CartStore
	Orders  OrderAggregator
	Chat    ConversationSession
	Catalog StoreCatalog
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// New builds a Server over the API routes.
func New(addr string, logger *log.Logger, deps Deps, corsOrigins []string) *Server {
	router := buildRouter(logger, deps, corsOrigins)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
