package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	appproject "github.com/taskflow/backend/internal/application/project"
	"github.com/taskflow/backend/internal/interfaces/http/dto"
	"github.com/taskflow/backend/internal/interfaces/http/middleware"
)

const dateLayout = "2006-01-02"

// AddressRequest is the embedded address payload for projects
type AddressRequest struct {
	PostalCode string `json:"postal_code" binding:"required,min=8,max=9"`
	Street     string `json:"street" binding:"max=200"`
	District   string `json:"district" binding:"max=100"`
	City       string `json:"city" binding:"max=100"`
	State      string `json:"state" binding:"max=2"`
	Number     string `json:"number" binding:"required,max=20"`
}

// ProjectRequest is the payload for creating or replacing a project
type ProjectRequest struct {
	Title       string         `json:"title" binding:"required,max=100"`
	Description string         `json:"description" binding:"max=500"`
	Status      string         `json:"status" binding:"required"`
	StartDate   string         `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     *string        `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Address     AddressRequest `json:"address" binding:"required"`
}

func (r *ProjectRequest) toInput() appproject.ProjectInput {
	startDate, _ := time.Parse(dateLayout, r.StartDate)
	var endDate *time.Time
	if r.EndDate != nil {
		parsed, _ := time.Parse(dateLayout, *r.EndDate)
		endDate = &parsed
	}
	return appproject.ProjectInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		StartDate:   startDate,
		EndDate:     endDate,
		Address: appproject.AddressInput{
			PostalCode: r.Address.PostalCode,
			Street:     r.Address.Street,
			District:   r.Address.District,
			City:       r.Address.City,
			State:      r.Address.State,
			Number:     r.Address.Number,
		},
	}
}

// ProjectHandler handles project CRUD endpoints
type ProjectHandler struct {
	BaseHandler
	projectService *appproject.ProjectService
	logger         *zap.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *appproject.ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger.Named("project_handler"),
	}
}

// Create handles POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.projectService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// List handles GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	results, err := h.projectService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}

// Get handles GET /projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	result, err := h.projectService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if result == nil {
		h.NotFound(c, "Project not found")
		return
	}

	h.Success(c, result)
}

// Update handles PUT /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.projectService.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete handles DELETE /projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	h.logger.Info("Project deletion requested",
		zap.String("project_id", id.String()),
		zap.String("user_id", middleware.GetJWTUserID(c)))

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

func (h *ProjectHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, dto.ErrCodeValidation, "Invalid project ID")
		return uuid.Nil, false
	}
	return id, true
}

// RegisterRoutes registers project routes on the given group
func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	{
		projects.POST("", h.Create)
		projects.GET("", h.List)
		projects.GET("/:id", h.Get)
		projects.PUT("/:id", h.Update)
		projects.DELETE("/:id", h.Delete)
	}
}
