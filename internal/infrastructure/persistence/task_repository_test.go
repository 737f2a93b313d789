package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskflow/backend/internal/domain/project"
	"github.com/taskflow/backend/internal/domain/shared"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockTaskRepository creates a GormTaskRepository with a mocked SQL connection
func newMockTaskRepository(t *testing.T) (*GormTaskRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormTaskRepository(gormDB), mock, mockDB
}

func taskRows(taskID, projectID uuid.UUID) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "created_at", "updated_at", "project_id",
		"title", "description", "due_date", "priority", "status",
	}).AddRow(
		taskID, now, now, projectID,
		"Draft homepage copy", "", now, "HIGH", "TO_DO",
	)
}

func TestGormTaskRepository_FindByIDAndProjectID(t *testing.T) {
	t.Run("finds task scoped to its project", func(t *testing.T) {
		repo, mock, mockDB := newMockTaskRepository(t)
		defer mockDB.Close()

		taskID := uuid.New()
		projectID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE id = \$1 AND project_id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(taskID, projectID, 1).
			WillReturnRows(taskRows(taskID, projectID))

		task, err := repo.FindByIDAndProjectID(context.Background(), taskID, projectID)

		assert.NoError(t, err)
		assert.NotNil(t, task)
		assert.Equal(t, taskID, task.ID)
		assert.Equal(t, projectID, task.ProjectID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound when task belongs to another project", func(t *testing.T) {
		repo, mock, mockDB := newMockTaskRepository(t)
		defer mockDB.Close()

		taskID := uuid.New()
		projectID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE id = \$1 AND project_id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(taskID, projectID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		task, err := repo.FindByIDAndProjectID(context.Background(), taskID, projectID)

		assert.Error(t, err)
		assert.Nil(t, task)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormTaskRepository_FindByProjectID(t *testing.T) {
	t.Run("returns empty slice for project without tasks", func(t *testing.T) {
		repo, mock, mockDB := newMockTaskRepository(t)
		defer mockDB.Close()

		projectID := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "project_id", "title"})

		mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE project_id = \$1 ORDER BY created_at ASC`).
			WithArgs(projectID).
			WillReturnRows(rows)

		tasks, err := repo.FindByProjectID(context.Background(), projectID)

		assert.NoError(t, err)
		assert.Empty(t, tasks)
		assert.NotNil(t, tasks)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func storedDomainTask(t *testing.T, projectID uuid.UUID) *project.Task {
	due := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	task, err := project.NewTask(projectID, "Draft homepage copy", due, project.PriorityHigh, project.TaskStatusToDo)
	require.NoError(t, err)
	return task
}

func TestGormTaskRepository_Update(t *testing.T) {
	t.Run("updates existing task", func(t *testing.T) {
		repo, mock, mockDB := newMockTaskRepository(t)
		defer mockDB.Close()

		task := storedDomainTask(t, uuid.New())

		mock.ExpectExec(`UPDATE "tasks" SET .+ WHERE id = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), task)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound without inserting when task row is gone", func(t *testing.T) {
		repo, mock, mockDB := newMockTaskRepository(t)
		defer mockDB.Close()

		task := storedDomainTask(t, uuid.New())

		// Only the UPDATE is expected; an INSERT fallback would fail
		// the expectation check below
		mock.ExpectExec(`UPDATE "tasks" SET .+ WHERE id = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), task)

		assert.Error(t, err)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormTaskRepository_Delete(t *testing.T) {
	t.Run("deletes existing task", func(t *testing.T) {
		repo, mock, mockDB := newMockTaskRepository(t)
		defer mockDB.Close()

		taskID := uuid.New()

		mock.ExpectExec(`DELETE FROM "tasks" WHERE id = \$1`).
			WithArgs(taskID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), taskID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for non-existent task", func(t *testing.T) {
		repo, mock, mockDB := newMockTaskRepository(t)
		defer mockDB.Close()

		taskID := uuid.New()

		mock.ExpectExec(`DELETE FROM "tasks" WHERE id = \$1`).
			WithArgs(taskID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), taskID)

		assert.Error(t, err)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
