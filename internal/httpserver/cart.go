package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"foodhub/internal/domain"
)

type addItemRequest struct {
	ProductID      string `json:"productId"`
	StoreID        string `json:"storeId"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
	Image          string `json:"image"`
	StoreName      string `json:"storeName"`
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

type cartResponse struct {
	Items           []domain.CartLine   `json:"items"`
	TotalItems      int                 `json:"totalItems"`
	TotalPriceCents int64               `json:"totalPriceCents"`
	Groups          []domain.StoreGroup `json:"groups"`
}

func registerCartRoutes(api *gin.RouterGroup, cart CartStore) {
	group := api.Group("/cart")
	group.GET("", getCartHandler(cart))
	group.POST("/items", addItemHandler(cart))
	group.PATCH("/items/:itemId", updateQuantityHandler(cart))
	group.DELETE("/items/:itemId", removeItemHandler(cart))
	group.DELETE("", clearCartHandler(cart))
}

func getCartHandler(cart CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}

func addItemHandler(cart CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		if strings.TrimSpace(req.ProductID) == "" || strings.TrimSpace(req.StoreID) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "productId and storeId required"})
			return
		}
		if req.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "quantity must be positive"})
			return
		}

		line := cart.AddItem(domain.CartLine{
			ProductID:      req.ProductID,
			StoreID:        req.StoreID,
			Name:           req.Name,
			UnitPriceCents: req.UnitPriceCents,
			Quantity:       req.Quantity,
			ImageURL:       req.Image,
			StoreName:      req.StoreName,
		})
		c.JSON(http.StatusCreated, line)
	}
}

func updateQuantityHandler(cart CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "quantity required"})
			return
		}
		cart.UpdateQuantity(c.Param("itemId"), *req.Quantity)
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}

func removeItemHandler(cart CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.RemoveItem(c.Param("itemId"))
		c.JSON(http.StatusOK, toCartResponse(cart))
	}
}

func clearCartHandler(cart CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.Clear()
		c.Status(http.StatusNoContent)
	}
}

func toCartResponse(cart CartStore) cartResponse {
	items := cart.Lines()
	if items == nil {
		items = []domain.CartLine{}
	}
	groups := cart.GroupByStore()
	if groups == nil {
		groups = []domain.StoreGroup{}
	}
	return cartResponse{
		Items:           items,
		TotalItems:      cart.TotalItems(),
		TotalPriceCents: cart.TotalPriceCents(),
		Groups:          groups,
	}
}
