package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/testing/suite"
)

func TestProfileRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	profileRepo := NewProfileRepository(st.Storage)

	// Given: a profile with ID
	profile := &entity.Profile{
		ID:         "123",
		Mode:       entity.ModeHumanVsMachine,
		Difficulty: 7,
	}

	// When: CreateOrUpdate is called
	err := profileRepo.CreateOrUpdate(ctx, profile)

	// Then: no error should be returned, and profile is stored
	require.NoError(t, err)
}

func TestProfileRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		profileRepo := NewProfileRepository(st.Storage)

		// Given: a stored profile with a score
		profile := &entity.Profile{
			ID:         "123",
			Mode:       entity.ModeHumanVsMachine,
			Difficulty: 7,
			Wins:       2,
			Losses:     1,
		}

		err := profileRepo.CreateOrUpdate(ctx, profile)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrieved, err := profileRepo.GetByID(ctx, profile.ID)

		// Then: the retrieved profile should match the saved profile
		require.NoError(t, err)
		require.Equal(t, profile, retrieved)
	})

	t.Run("GetByID_Overwrite", func(t *testing.T) {
		ctx, st := suite.New(t)

		profileRepo := NewProfileRepository(st.Storage)

		// Given: a profile saved twice with a changed score
		profile := &entity.Profile{ID: "123"}
		require.NoError(t, profileRepo.CreateOrUpdate(ctx, profile))
		profile.Draws = 3
		require.NoError(t, profileRepo.CreateOrUpdate(ctx, profile))

		// When: GetByID is called
		retrieved, err := profileRepo.GetByID(ctx, profile.ID)

		// Then: the last version is returned
		require.NoError(t, err)
		assert.Equal(t, 3, retrieved.Draws)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		profileRepo := NewProfileRepository(st.Storage)

		nonExistentProfileID := "9999999"

		// When: GetByID is called with non-existent ID
		retrieved, err := profileRepo.GetByID(ctx, nonExistentProfileID)

		// Then: an ErrProfileNotFound error should be returned
		require.ErrorIs(t, err, ErrProfileNotFound)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Nil(t, retrieved)
	})
}
