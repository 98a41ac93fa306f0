package database

import (
	"testing"

	"skillswap/internal/models"

	"github.com/stretchr/testify/require"
)

func TestPersistentModelsCoversDomain(t *testing.T) {
	registered := PersistentModels()

	var (
		hasUser, hasSkill, hasUserSkill bool
		hasSwap, hasRating, hasMessage  bool
	)
	for _, model := range registered {
		switch model.(type) {
		case *models.User:
			hasUser = true
		case *models.Skill:
			hasSkill = true
		case *models.UserSkill:
			hasUserSkill = true
		case *models.SwapRequest:
			hasSwap = true
		case *models.Rating:
			hasRating = true
		case *models.AdminMessage:
			hasMessage = true
		}
	}

	require.True(t, hasUser, "PersistentModels should include User")
	require.True(t, hasSkill, "PersistentModels should include Skill")
	require.True(t, hasUserSkill, "PersistentModels should include UserSkill")
	require.True(t, hasSwap, "PersistentModels should include SwapRequest")
	require.True(t, hasRating, "PersistentModels should include Rating")
	require.True(t, hasMessage, "PersistentModels should include AdminMessage")
	require.Len(t, registered, 6)
}
