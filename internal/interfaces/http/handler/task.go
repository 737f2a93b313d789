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

// TaskRequest is the payload for creating or replacing a task
type TaskRequest struct {
	Title       string `json:"title" binding:"required,max=150"`
	Description string `json:"description" binding:"max=500"`
	DueDate     string `json:"due_date" binding:"required,datetime=2006-01-02"`
	Priority    string `json:"priority" binding:"required"`
	Status      string `json:"status" binding:"required"`
}

func (r *TaskRequest) toInput() appproject.TaskInput {
	dueDate, _ := time.Parse(dateLayout, r.DueDate)
	return appproject.TaskInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     dueDate,
		Priority:    r.Priority,
		Status:      r.Status,
	}
}

// TaskHandler handles task endpoints nested under projects
type TaskHandler struct {
	BaseHandler
	taskService *appproject.TaskService
	logger      *zap.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *appproject.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger.Named("task_handler"),
	}
}

// Create handles POST /projects/:id/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.taskService.Create(c.Request.Context(), projectID, req.toInput())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// List handles GET /projects/:id/tasks
func (h *TaskHandler) List(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}

	results, err := h.taskService.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, results)
}

// Get handles GET /projects/:id/tasks/:taskId
func (h *TaskHandler) Get(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}
	taskID, ok := h.parseTaskID(c)
	if !ok {
		return
	}

	result, err := h.taskService.GetByID(c.Request.Context(), projectID, taskID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if result == nil {
		h.NotFound(c, "Task not found")
		return
	}

	h.Success(c, result)
}

// Update handles PUT /projects/:id/tasks/:taskId
func (h *TaskHandler) Update(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}
	taskID, ok := h.parseTaskID(c)
	if !ok {
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.taskService.Update(c.Request.Context(), projectID, taskID, req.toInput())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete handles DELETE /projects/:id/tasks/:taskId
func (h *TaskHandler) Delete(c *gin.Context) {
	projectID, ok := h.parseProjectID(c)
	if !ok {
		return
	}
	taskID, ok := h.parseTaskID(c)
	if !ok {
		return
	}

	h.logger.Info("Task deletion requested",
		zap.String("task_id", taskID.String()),
		zap.String("project_id", projectID.String()),
		zap.String("user_id", middleware.GetJWTUserID(c)))

	if err := h.taskService.Delete(c.Request.Context(), projectID, taskID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

func (h *TaskHandler) parseProjectID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, dto.ErrCodeValidation, "Invalid project ID")
		return uuid.Nil, false
	}
	return id, true
}

func (h *TaskHandler) parseTaskID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("taskId"))
	if err != nil {
		h.BadRequest(c, dto.ErrCodeValidation, "Invalid task ID")
		return uuid.Nil, false
	}
	return id, true
}

// RegisterRoutes registers task routes on the given group
func (h *TaskHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tasks := rg.Group("/projects/:id/tasks")
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/:taskId", h.Get)
		tasks.PUT("/:taskId", h.Update)
		tasks.DELETE("/:taskId", h.Delete)
	}
}
