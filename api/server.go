package api

import (
	db "github.com/banachtech/binomial/db/sqlc"
	"github.com/gin-gonic/gin"
)

// Server serves HTTP requests for the lattice pricing service.
type Server struct {
	store  db.Store
	router *gin.Engine
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(store db.Store) *Server {
	server := &Server{store: store}

	server.setupRouter()
	return server
}

func (server *Server) setupRouter() {
	router := gin.Default()

	router.POST("/register", server.register)

	authRoutes := router.Group("/v1").Use(server.authentication)
	authRoutes.POST("/option", server.option)
	authRoutes.POST("/swap", server.swap)
	authRoutes.POST("/swaption", server.swaption)
	authRoutes.POST("/bsm", server.bsm)
	authRoutes.POST("/term-structure", server.termStructure)
	authRoutes.POST("/term-structure/plot", server.termStructurePlot)
	authRoutes.POST("/calibrate", server.calibrate)
	authRoutes.GET("/calibrations/latest", server.latestCalibration)
	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
