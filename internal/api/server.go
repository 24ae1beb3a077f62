package api

import (
	"fmt"
	"net/http"

	"github.com/abhi911kumar/freecode-ExerciseTracker/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server wraps the REST API server
type Server struct {
	handler *Handler
	router  *gin.Engine
}

// NewServer creates a new API server
func NewServer(users UserStore, exercises ExerciseStore, logs LogBuilder) *Server {
	handler := NewHandler(users, exercises, logs)

	// Use gin.New() instead of gin.Default() so we control the logger
	router := gin.New()

	// Custom logger that skips the metrics endpoint (scraped frequently)
	router.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		if param.Path == "/metrics" {
			return ""
		}
		return fmt.Sprintf("[%s] %s %s %d %s %s \"%s\" %s\n",
			param.TimeStamp.Format("2006/01/02 - 15:04:05"),
			param.ClientIP,
			param.Method,
			param.StatusCode,
			param.Latency,
			param.Path,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
	}))
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(observability.HTTPMetrics())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.GET("/healthz", handler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api/exercise")
	{
		api.POST("/new-user", handler.CreateUser)
		api.POST("/add", handler.AddExercise)
		api.GET("/users", handler.ListUsers)
		api.GET("/log", handler.GetLog)
	}

	// Serve static files (landing page) - must be last
	ServeStaticFiles(router)

	return &Server{
		handler: handler,
		router:  router,
	}
}

// RequestID tags each request with an id for log correlation. An incoming
// X-Request-ID is honored so ids survive proxies.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// GetRouter returns the router
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
