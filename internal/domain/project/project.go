package project

import (
	"strings"
	"time"

	"github.com/taskflow/backend/internal/domain/shared"
)

// Status represents the lifecycle status of a project
type Status string

const (
	StatusToDo       Status = "TO_DO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusOnHold     Status = "ON_HOLD"
	StatusCompleted  Status = "COMPLETED"
	StatusCanceled   Status = "CANCELED"
)

// IsValid reports whether the status is a known value
func (s Status) IsValid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusOnHold, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// Address is the postal address block attached to a project.
// Street, district, city and state are enrichment fields and may be empty;
// postal code and number are required.
type Address struct {
	PostalCode string
	Street     string
	District   string
	City       string
	State      string
	Number     string
}

// Validate checks the address field constraints
func (a Address) Validate() error {
	if l := len(a.PostalCode); l < 8 || l > 9 {
		return shared.NewDomainError("INVALID_ADDRESS", "Postal code must be 8 to 9 characters")
	}
	if len(a.State) > 2 {
		return shared.NewDomainError("INVALID_ADDRESS", "State cannot exceed 2 characters")
	}
	if a.Number == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "Address number is required")
	}
	if len(a.Number) > 20 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address number cannot exceed 20 characters")
	}
	return nil
}

// Project is the aggregate root for the task-tracking domain.
// It exclusively owns its tasks: a task cannot outlive the project or be
// reassigned to another one. Tasks are reached through TaskRepository,
// never through a collection on this struct.
type Project struct {
	shared.BaseEntity
	Title       string
	Description string
	Status      Status
	StartDate   time.Time
	EndDate     *time.Time
	Address     Address
}

// NewProject creates a new project
func NewProject(title string, status Status, startDate time.Time, address Address) (*Project, error) {
	p := &Project{BaseEntity: shared.NewBaseEntity()}
	if err := p.apply(title, "", status, startDate, nil, address); err != nil {
		return nil, err
	}
	return p, nil
}

// SetDescription sets the project description
func (p *Project) SetDescription(description string) error {
	description = strings.TrimSpace(description)
	if len(description) > 500 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 500 characters")
	}
	p.Description = description
	p.Touch()
	return nil
}

// SetEndDate sets the optional project end date
func (p *Project) SetEndDate(endDate *time.Time) {
	p.EndDate = endDate
	p.Touch()
}

// Replace overwrites every mutable attribute with the given values.
// Fields absent from the input are cleared, not preserved. The task
// collection is not touched.
func (p *Project) Replace(title, description string, status Status, startDate time.Time, endDate *time.Time, address Address) error {
	if err := p.apply(title, description, status, startDate, endDate, address); err != nil {
		return err
	}
	p.Touch()
	return nil
}

func (p *Project) apply(title, description string, status Status, startDate time.Time, endDate *time.Time, address Address) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title is required")
	}
	if len(title) > 100 {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 100 characters")
	}

	description = strings.TrimSpace(description)
	if len(description) > 500 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 500 characters")
	}

	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown project status")
	}
	if startDate.IsZero() {
		return shared.NewDomainError("INVALID_START_DATE", "Start date is required")
	}
	if err := address.Validate(); err != nil {
		return err
	}

	p.Title = title
	p.Description = description
	p.Status = status
	p.StartDate = startDate
	p.EndDate = endDate
	p.Address = address
	return nil
}
