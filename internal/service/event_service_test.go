package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aethelgard/aethelgardapi/internal/models"
	"github.com/aethelgard/aethelgardapi/internal/repository"
)

func newTestEventService(t *testing.T) *EventService {
	t.Helper()
	store, err := repository.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewEventService(repository.NewEventsRepository(store))
}

func strPtr(s string) *string { return &s }

func TestEventLifecycle(t *testing.T) {
	svc := newTestEventService(t)
	admin := testClaims("u-admin", "Admin")

	created, err := svc.Create(admin, models.EventParams{
		Title:    strPtr("Stratholme speedrun"),
		Date:     strPtr("2026-09-12"),
		Location: strPtr("Eastern Plaguelands"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "u-admin", created.CreatedBy)
	assert.Nil(t, created.UpdatedAt)

	// Partial update: only the date changes, every other field survives
	updated, err := svc.Update(admin, created.ID, models.EventParams{Date: strPtr("2026-09-19")})
	require.NoError(t, err)
	assert.Equal(t, "Stratholme speedrun", updated.Title)
	assert.Equal(t, "2026-09-19", updated.Date)
	assert.Equal(t, "Eastern Plaguelands", updated.Location)
	assert.Equal(t, "u-admin", updated.UpdatedBy)
	require.NotNil(t, updated.UpdatedAt)

	require.NoError(t, svc.Delete(created.ID))

	list, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEventsNewestFirst(t *testing.T) {
	svc := newTestEventService(t)
	admin := testClaims("u-admin", "Admin")

	_, err := svc.Create(admin, models.EventParams{Title: strPtr("First"), Date: strPtr("2026-09-01")})
	require.NoError(t, err)
	_, err = svc.Create(admin, models.EventParams{Title: strPtr("Second"), Date: strPtr("2026-09-02")})
	require.NoError(t, err)

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Second", list[0].Title)
}

func TestEventNotFound(t *testing.T) {
	svc := newTestEventService(t)
	admin := testClaims("u-admin", "Admin")

	_, err := svc.Update(admin, "missing", models.EventParams{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrEventNotFound)

	assert.ErrorIs(t, svc.Delete("missing"), ErrEventNotFound)
}
