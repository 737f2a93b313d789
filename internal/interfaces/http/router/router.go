package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar is implemented by handlers that register their own routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router wires handlers onto a versioned API group
type Router struct {
	engine     *gin.Engine
	apiGroup   *gin.RouterGroup
	registrars []RouteRegistrar
}

// New creates a router over the given engine with an /api/v1 group
func New(engine *gin.Engine) *Router {
	return &Router{
		engine:   engine,
		apiGroup: engine.Group("/api/v1"),
	}
}

// Register adds handlers to be wired when Setup is called
func (r *Router) Register(registrars ...RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrars...)
	return r
}

// Setup registers all routes on the API group
func (r *Router) Setup() {
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(r.apiGroup)
	}
}

// Group returns the versioned API group for additional wiring
func (r *Router) Group() *gin.RouterGroup {
	return r.apiGroup
}
