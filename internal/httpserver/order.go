package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"foodhub/internal/domain"
)

type updateStatusRequest struct {
	Status string `json:"status"`
}

func registerOrderRoutes(api *gin.RouterGroup, cart CartStore, orders OrderAggregator) {
	group := api.Group("/orders")
	group.POST("/checkout", checkoutHandler(cart, orders))
	group.GET("/current", currentOrderHandler(orders))
	group.PATCH("/current/status", updateMasterStatusHandler(orders))
	group.PATCH("/suborders/:subOrderId/status", updateSubOrderStatusHandler(orders))
}

// checkoutHandler snapshots the cart, aggregates it into a master order
// and clears the cart. The empty-cart case is refused here, before the
// aggregator runs; the aggregator still rejects empty snapshots itself.
func checkoutHandler(cart CartStore, orders OrderAggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot := cart.Lines()
		if len(snapshot) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "cart is empty"})
			return
		}

		master, err := orders.CreateOrder(snapshot)
		if err != nil {
			if errors.Is(err, domain.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "cart is empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "could not create order"})
			return
		}

		cart.Clear()
		c.JSON(http.StatusCreated, master)
	}
}

func currentOrderHandler(orders OrderAggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		master := orders.Current()
		if master == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "no order placed"})
			return
		}
		c.JSON(http.StatusOK, master)
	}
}

func updateMasterStatusHandler(orders OrderAggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "status required"})
			return
		}
		status := domain.MasterOrderStatus(req.Status)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "unknown status"})
			return
		}
		orders.UpdateStatus(status)
		c.Status(http.StatusNoContent)
	}
}

func updateSubOrderStatusHandler(orders OrderAggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "status required"})
			return
		}
		status := domain.SubOrderStatus(req.Status)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "unknown status"})
			return
		}
		// Unknown sub-order ids are a silent no-op, mirroring the
		// aggregator's semantics.
		orders.UpdateSubOrderStatus(c.Param("subOrderId"), status)
		c.Status(http.StatusNoContent)
	}
}
