package project

import (
	"time"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/project"
)

// dateLayout is the wire format for calendar dates; they carry no
// time-of-day or timezone component.
const dateLayout = "2006-01-02"

// AddressInput carries the address block of a project request
type AddressInput struct {
	PostalCode string
	Street     string
	District   string
	City       string
	State      string
	Number     string
}

func (a AddressInput) toDomain() project.Address {
	return project.Address{
		PostalCode: a.PostalCode,
		Street:     a.Street,
		District:   a.District,
		City:       a.City,
		State:      a.State,
		Number:     a.Number,
	}
}

// ProjectInput carries every mutable project attribute. Create and
// update share it: update is a full-field replace, so both operations
// consume the complete set.
type ProjectInput struct {
	Title       string
	Description string
	Status      string
	StartDate   time.Time
	EndDate     *time.Time
	Address     AddressInput
}

// AddressResult is the address block of a project response
type AddressResult struct {
	PostalCode string `json:"postal_code"`
	Street     string `json:"street"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	Number     string `json:"number"`
}

// ProjectResult is the project representation returned to callers
type ProjectResult struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      string        `json:"status"`
	StartDate   string        `json:"start_date"`
	EndDate     *string       `json:"end_date"`
	Address     AddressResult `json:"address"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func newProjectResult(p *project.Project) *ProjectResult {
	var endDate *string
	if p.EndDate != nil {
		formatted := p.EndDate.Format(dateLayout)
		endDate = &formatted
	}
	return &ProjectResult{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Status:      string(p.Status),
		StartDate:   p.StartDate.Format(dateLayout),
		EndDate:     endDate,
		Address: AddressResult{
			PostalCode: p.Address.PostalCode,
			Street:     p.Address.Street,
			District:   p.Address.District,
			City:       p.Address.City,
			State:      p.Address.State,
			Number:     p.Address.Number,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// TaskInput carries every mutable task attribute; like ProjectInput it
// is shared by create and full-field-replace update.
type TaskInput struct {
	Title       string
	Description string
	DueDate     time.Time
	Priority    string
	Status      string
}

// TaskResult is the task representation returned to callers
type TaskResult struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     string    `json:"due_date"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newTaskResult(t *project.Task) *TaskResult {
	return &TaskResult{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate.Format(dateLayout),
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
