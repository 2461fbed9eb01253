package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lexcase/models"
	"lexcase/store"
)

func TestGetHearingsByCaseID(t *testing.T) {
	s := setupTestStore(t)
	repo := NewHearingRepository(s)

	first, err := repo.Create(models.Hearing{CaseID: "1", Date: "2024-12-28", Type: "Preliminary"})
	assert.NoError(t, err)
	_, err = repo.Create(models.Hearing{CaseID: "2", Date: "2024-12-29", Type: "Trial"})
	assert.NoError(t, err)
	second, err := repo.Create(models.Hearing{CaseID: "1", Date: "2025-01-10", Type: "Trial"})
	assert.NoError(t, err)

	hearings, err := repo.GetByCaseID("1")
	assert.NoError(t, err)
	assert.Len(t, hearings, 2)
	assert.Equal(t, first.ID, hearings[0].ID)
	assert.Equal(t, second.ID, hearings[1].ID)

	// A caseId with no matches yields an empty sequence
	none, err := repo.GetByCaseID("999")
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestCreateHearingAssignsID(t *testing.T) {
	s := setupTestStore(t)
	repo := NewHearingRepository(s)

	created, err := repo.Create(models.Hearing{
		CaseID:    "1",
		Date:      "2024-12-28",
		Time:      "10:00 AM",
		Status:    models.HearingStatusScheduled,
		Judge:     "Hon. Michael Roberts",
		Courtroom: "3B",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "1", created.CaseID)
}

func TestUpdateHearing(t *testing.T) {
	s := setupTestStore(t)
	repo := NewHearingRepository(s)

	created, err := repo.Create(models.Hearing{
		CaseID: "1",
		Date:   "2024-12-28",
		Status: models.HearingStatusScheduled,
	})
	assert.NoError(t, err)

	updated, err := repo.Update(created.ID, HearingUpdate{
		Status:  stringPtr(models.HearingStatusCompleted),
		Outcome: stringPtr("Settled"),
	})
	assert.NoError(t, err)

	assert.Equal(t, models.HearingStatusCompleted, updated.Status)
	assert.Equal(t, "Settled", updated.Outcome)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "2024-12-28", updated.Date)

	// An empty patch changes nothing
	untouched, err := repo.Update(created.ID, HearingUpdate{})
	assert.NoError(t, err)
	assert.Equal(t, updated, untouched)

	_, err = repo.Update("missing", HearingUpdate{})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteHearing(t *testing.T) {
	s := setupTestStore(t)
	repo := NewHearingRepository(s)

	created, err := repo.Create(models.Hearing{CaseID: "1", Date: "2024-12-28"})
	assert.NoError(t, err)

	assert.NoError(t, repo.Delete(created.ID))
	assert.NoError(t, repo.Delete(created.ID))

	hearings, err := repo.GetByCaseID("1")
	assert.NoError(t, err)
	assert.Empty(t, hearings)
}
