package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"foodhub/internal/domain"
)

func registerCatalogRoutes(api *gin.RouterGroup, catalog StoreCatalog) {
	api.GET("/stores", listStoresHandler(catalog))
	api.GET("/stores/:storeId", getStoreHandler(catalog))
	api.GET("/stores/:storeId/products", storeProductsHandler(catalog))
	api.GET("/products", listProductsHandler(catalog))
}

func listStoresHandler(catalog StoreCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		stores := catalog.Stores(c.Query("category"))
		if stores == nil {
			stores = []domain.Store{}
		}
		c.JSON(http.StatusOK, gin.H{"stores": stores})
	}
}

func getStoreHandler(catalog StoreCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, err := catalog.Store(c.Param("storeId"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "store not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "could not load store"})
			return
		}
		c.JSON(http.StatusOK, store)
	}
}

func storeProductsHandler(catalog StoreCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID := c.Param("storeId")
		if _, err := catalog.Store(storeID); errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "store not found"})
			return
		}
		products := catalog.Products(storeID, c.Query("category"))
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func listProductsHandler(catalog StoreCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := catalog.Products("", c.Query("category"))
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}
