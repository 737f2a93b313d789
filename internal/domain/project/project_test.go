package project

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress() Address {
	return Address{
		PostalCode: "01001-000",
		Street:     "Praça da Sé",
		District:   "Sé",
		City:       "São Paulo",
		State:      "SP",
		Number:     "10",
	}
}

func TestNewProject(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates project successfully", func(t *testing.T) {
		p, err := NewProject("Migrate DB", StatusToDo, start, validAddress())

		require.NoError(t, err)
		assert.Equal(t, "Migrate DB", p.Title)
		assert.Equal(t, StatusToDo, p.Status)
		assert.Equal(t, start, p.StartDate)
		assert.Nil(t, p.EndDate)
		assert.Equal(t, "01001-000", p.Address.PostalCode)
	})

	t.Run("fails with empty title", func(t *testing.T) {
		p, err := NewProject("  ", StatusToDo, start, validAddress())

		assert.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "Title is required")
	})

	t.Run("fails with title over 100 chars", func(t *testing.T) {
		p, err := NewProject(strings.Repeat("x", 101), StatusToDo, start, validAddress())

		assert.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("fails with unknown status", func(t *testing.T) {
		p, err := NewProject("Migrate DB", Status("ARCHIVED"), start, validAddress())

		assert.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("fails with zero start date", func(t *testing.T) {
		p, err := NewProject("Migrate DB", StatusToDo, time.Time{}, validAddress())

		assert.Error(t, err)
		assert.Nil(t, p)
	})
}

func TestAddress_Validate(t *testing.T) {
	t.Run("accepts 8 and 9 char postal codes", func(t *testing.T) {
		addr := validAddress()
		addr.PostalCode = "01001000"
		assert.NoError(t, addr.Validate())

		addr.PostalCode = "01001-000"
		assert.NoError(t, addr.Validate())
	})

	t.Run("rejects short postal code", func(t *testing.T) {
		addr := validAddress()
		addr.PostalCode = "123"
		assert.Error(t, addr.Validate())
	})

	t.Run("rejects missing number", func(t *testing.T) {
		addr := validAddress()
		addr.Number = ""
		assert.Error(t, addr.Validate())
	})

	t.Run("rejects state over 2 chars", func(t *testing.T) {
		addr := validAddress()
		addr.State = "ABC"
		assert.Error(t, addr.Validate())
	})
}

func TestProject_Replace(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("overwrites every mutable field", func(t *testing.T) {
		p, err := NewProject("Old Title", StatusToDo, start, validAddress())
		require.NoError(t, err)
		require.NoError(t, p.SetDescription("old description"))

		newStart := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		newEnd := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
		newAddr := Address{PostalCode: "20040-020", Number: "55"}

		err = p.Replace("New Title", "", StatusInProgress, newStart, &newEnd, newAddr)

		require.NoError(t, err)
		assert.Equal(t, "New Title", p.Title)
		assert.Empty(t, p.Description, "omitted fields are cleared, not preserved")
		assert.Equal(t, StatusInProgress, p.Status)
		assert.Equal(t, newStart, p.StartDate)
		require.NotNil(t, p.EndDate)
		assert.Equal(t, newEnd, *p.EndDate)
		assert.Equal(t, newAddr, p.Address)
	})

	t.Run("rejects invalid replacement and keeps original", func(t *testing.T) {
		p, err := NewProject("Old Title", StatusToDo, start, validAddress())
		require.NoError(t, err)

		err = p.Replace("", "", StatusInProgress, start, nil, validAddress())

		assert.Error(t, err)
		assert.Equal(t, "Old Title", p.Title)
		assert.Equal(t, StatusToDo, p.Status)
	})
}

func TestProject_SetDescription(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p, err := NewProject("Migrate DB", StatusToDo, start, validAddress())
	require.NoError(t, err)

	assert.NoError(t, p.SetDescription(strings.Repeat("x", 500)))
	assert.Error(t, p.SetDescription(strings.Repeat("x", 501)))
}
