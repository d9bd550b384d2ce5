package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/config"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/usecase"
)

func TestGameSettings(t *testing.T) {
	t.Run("Valid defaults", func(t *testing.T) {
		settings, err := gameSettings(config.Game{DefaultMode: "pvp", DefaultDifficulty: 3})

		require.NoError(t, err)
		assert.Equal(t, usecase.Settings{Mode: entity.ModeHumanVsHuman, Difficulty: 3}, settings)
	})

	t.Run("Unknown mode", func(t *testing.T) {
		_, err := gameSettings(config.Game{DefaultMode: "online", DefaultDifficulty: 3})

		require.ErrorIs(t, err, apperror.ErrInvalidMode)
	})

	t.Run("Difficulty out of range", func(t *testing.T) {
		_, err := gameSettings(config.Game{DefaultMode: "pve", DefaultDifficulty: 11})

		require.ErrorIs(t, err, apperror.ErrInvalidDifficulty)
	})
}
