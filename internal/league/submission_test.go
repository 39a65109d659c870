package league

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() (GameSubmission, []uuid.UUID) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	bubble := ids[3]
	return GameSubmission{
		GameDate:  time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		Notes:     "  AA vs KK  ",
		PlayerIDs: ids,
		Podium:    [3]uuid.UUID{ids[0], ids[1], ids[2]},
		Bubble:    &bubble,
	}, ids
}

func TestValidateSubmission(t *testing.T) {
	outsider := uuid.New()

	testCases := []struct {
		name     string
		mutate   func(s *GameSubmission, ids []uuid.UUID)
		expected error
	}{
		{
			name:     "Valid",
			mutate:   func(s *GameSubmission, ids []uuid.UUID) {},
			expected: nil,
		},
		{
			name: "Two players",
			mutate: func(s *GameSubmission, ids []uuid.UUID) {
				s.PlayerIDs = ids[:2]
			},
			expected: ErrNotEnoughPlayers,
		},
		{
			name: "Duplicated selections do not count twice",
			mutate: func(s *GameSubmission, ids []uuid.UUID) {
				s.PlayerIDs = []uuid.UUID{ids[0], ids[1], ids[1]}
			},
			expected: ErrNotEnoughPlayers,
		},
		{
			name: "Missing third place",
			mutate: func(s *GameSubmission, ids []uuid.UUID) {
				s.Podium[2] = uuid.Nil
			},
			expected: ErrPodiumIncomplete,
		},
		{
			name: "Same player twice on the podium",
			mutate: func(s *GameSubmission, ids []uuid.UUID) {
				s.Podium[2] = ids[0]
			},
			expected: ErrDuplicatePodium,
		},
		{
			name: "Podium player not attending",
			mutate: func(s *GameSubmission, ids []uuid.UUID) {
				s.Podium[1] = outsider
			},
			expected: ErrPodiumNotSelected,
		},
		{
			name: "Bubble player not attending",
			mutate: func(s *GameSubmission, ids []uuid.UUID) {
				s.Bubble = &outsider
			},
			expected: ErrBubbleNotSelected,
		},
		{
			name: "Final table player not attending",
			mutate: func(s *GameSubmission, ids []uuid.UUID) {
				s.FinalTable = []uuid.UUID{outsider}
			},
			expected: ErrFinalTableNotSelected,
		},
		{
			name: "No date",
			mutate: func(s *GameSubmission, ids []uuid.UUID) {
				s.GameDate = time.Time{}
			},
			expected: ErrMissingDate,
		},
		{
			name: "No bubble is fine",
			mutate: func(s *GameSubmission, ids []uuid.UUID) {
				s.Bubble = nil
			},
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, ids := validSubmission()
			tc.mutate(&s, ids)

			err := ValidateSubmission(s)
			if tc.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestBuildResults(t *testing.T) {
	s, ids := validSubmission()
	s.FinalTable = []uuid.UUID{ids[0], ids[3]}
	gameID := uuid.New()

	results := BuildResults(gameID, s)
	require.Len(t, results, 4)

	expectedPoints := []int{10, 5, 3, 1}
	for i, r := range results {
		assert.Equal(t, gameID, r.GameID)
		assert.Equal(t, ids[i], r.PlayerID)
		assert.Equal(t, expectedPoints[i], r.Points)
		assert.NotEqual(t, uuid.Nil, r.ID)
	}
	assert.Equal(t, 1, *results[0].Position)
	assert.Nil(t, results[3].Position)

	bubbles := 0
	for _, r := range results {
		if r.IsBubble {
			bubbles++
		}
	}
	assert.Equal(t, 1, bubbles)
	assert.True(t, results[3].IsBubble)
	assert.True(t, results[0].IsFinalTable)
	assert.False(t, results[1].IsFinalTable)

	assert.Equal(t, "AA vs KK", *s.NotesOrNil())
	s.Notes = "   "
	assert.Nil(t, s.NotesOrNil())
}

func TestPreviewPoints(t *testing.T) {
	s, ids := validSubmission()
	s.PlayerIDs = []uuid.UUID{ids[3], ids[2], ids[1], ids[0]}

	preview := PreviewPoints(s)
	require.Len(t, preview, 4)
	assert.Equal(t, ids[0], preview[0].PlayerID)
	assert.Equal(t, 10, preview[0].Points)
	assert.Equal(t, ids[3], preview[3].PlayerID)
	assert.True(t, preview[3].IsBubble)
}
