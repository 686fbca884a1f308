package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// buildRouter wires routes for the API. The consumer is a browser
// storefront, so CORS is always on; an empty origin list allows all.
func buildRouter(logger *log.Logger, deps Deps, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	if len(corsOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = corsOrigins
	}
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)

	api := router.Group("/api")
	registerCatalogRoutes(api, deps.Catalog)
	registerCartRoutes(api, deps.Cart)
	registerOrderRoutes(api, deps.Cart, deps.Orders)
	registerChatRoutes(api, deps.Chat)

	return router
}
