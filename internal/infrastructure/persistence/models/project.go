package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/taskflow/backend/internal/domain/project"
)

// ProjectModel is the persistence model for the Project aggregate root.
type ProjectModel struct {
	BaseModel
	Title       string         `gorm:"type:varchar(100);not null"`
	Description string         `gorm:"type:varchar(500)"`
	Status      project.Status `gorm:"type:varchar(20);not null"`
	StartDate   time.Time      `gorm:"type:date;not null"`
	EndDate     *time.Time     `gorm:"type:date"`
	// Embedded address fields
	AddressPostalCode string `gorm:"column:address_postal_code;type:varchar(9);not null"`
	AddressStreet     string `gorm:"column:address_street;type:varchar(200)"`
	AddressDistrict   string `gorm:"column:address_district;type:varchar(100)"`
	AddressCity       string `gorm:"column:address_city;type:varchar(100)"`
	AddressState      string `gorm:"column:address_state;type:varchar(2)"`
	AddressNumber     string `gorm:"column:address_number;type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts the persistence model to a domain Project entity.
func (m *ProjectModel) ToDomain() *project.Project {
	return &project.Project{
		BaseEntity:  m.BaseModel.ToDomain(),
		Title:       m.Title,
		Description: m.Description,
		Status:      m.Status,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Address: project.Address{
			PostalCode: m.AddressPostalCode,
			Street:     m.AddressStreet,
			District:   m.AddressDistrict,
			City:       m.AddressCity,
			State:      m.AddressState,
			Number:     m.AddressNumber,
		},
	}
}

// FromDomain populates the persistence model from a domain Project entity.
func (m *ProjectModel) FromDomain(p *project.Project) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Title = p.Title
	m.Description = p.Description
	m.Status = p.Status
	m.StartDate = p.StartDate
	m.EndDate = p.EndDate
	m.AddressPostalCode = p.Address.PostalCode
	m.AddressStreet = p.Address.Street
	m.AddressDistrict = p.Address.District
	m.AddressCity = p.Address.City
	m.AddressState = p.Address.State
	m.AddressNumber = p.Address.Number
}

// ProjectModelFromDomain creates a new persistence model from a domain Project entity.
func ProjectModelFromDomain(p *project.Project) *ProjectModel {
	m := &ProjectModel{}
	m.FromDomain(p)
	return m
}

// TaskModel is the persistence model for the Task entity.
type TaskModel struct {
	BaseModel
	ProjectID   uuid.UUID            `gorm:"type:uuid;not null;index"`
	Title       string               `gorm:"type:varchar(150);not null"`
	Description string               `gorm:"type:varchar(500)"`
	DueDate     time.Time            `gorm:"type:date;not null"`
	Priority    project.TaskPriority `gorm:"type:varchar(20);not null"`
	Status      project.TaskStatus   `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (TaskModel) TableName() string {
	return "tasks"
}

// ToDomain converts the persistence model to a domain Task entity.
func (m *TaskModel) ToDomain() *project.Task {
	return &project.Task{
		BaseEntity:  m.BaseModel.ToDomain(),
		ProjectID:   m.ProjectID,
		Title:       m.Title,
		Description: m.Description,
		DueDate:     m.DueDate,
		Priority:    m.Priority,
		Status:      m.Status,
	}
}

// FromDomain populates the persistence model from a domain Task entity.
func (m *TaskModel) FromDomain(t *project.Task) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.ProjectID = t.ProjectID
	m.Title = t.Title
	m.Description = t.Description
	m.DueDate = t.DueDate
	m.Priority = t.Priority
	m.Status = t.Status
}

// TaskModelFromDomain creates a new persistence model from a domain Task entity.
func TaskModelFromDomain(t *project.Task) *TaskModel {
	m := &TaskModel{}
	m.FromDomain(t)
	return m
}
