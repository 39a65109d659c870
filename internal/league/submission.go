package league

import (
	"errors"
	"sort"
	"time"

	"github.com/AdamBeresnev/poker-league/internal/utils"
	"github.com/google/uuid"
)

const MinPlayersPerGame = 3

var (
	ErrNotEnoughPlayers      = errors.New("need at least 3 players")
	ErrPodiumIncomplete      = errors.New("please assign all podium positions")
	ErrDuplicatePodium       = errors.New("each podium position must be a different player")
	ErrPodiumNotSelected     = errors.New("podium player is not part of this game")
	ErrBubbleNotSelected     = errors.New("bubble player is not part of this game")
	ErrFinalTableNotSelected = errors.New("final table player is not part of this game")
	ErrMissingDate           = errors.New("game date is required")
)

// GameSubmission is what the results form sends for a new or edited game.
type GameSubmission struct {
	GameDate   time.Time
	Notes      string
	PlayerIDs  []uuid.UUID
	Podium     [3]uuid.UUID
	Bubble     *uuid.UUID
	FinalTable []uuid.UUID
}

// Selected returns the attending players without duplicates, in submission order
func (s GameSubmission) Selected() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(s.PlayerIDs))
	out := make([]uuid.UUID, 0, len(s.PlayerIDs))
	for _, id := range s.PlayerIDs {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (s GameSubmission) NotesOrNil() *string {
	return utils.StringOrNil(s.Notes)
}

// ValidateSubmission checks a game before anything is written.
func ValidateSubmission(s GameSubmission) error {
	selected := s.Selected()
	if len(selected) < MinPlayersPerGame {
		return ErrNotEnoughPlayers
	}

	for _, id := range s.Podium {
		if id == uuid.Nil {
			return ErrPodiumIncomplete
		}
	}
	if s.Podium[0] == s.Podium[1] || s.Podium[0] == s.Podium[2] || s.Podium[1] == s.Podium[2] {
		return ErrDuplicatePodium
	}

	inGame := make(map[uuid.UUID]struct{}, len(selected))
	for _, id := range selected {
		inGame[id] = struct{}{}
	}
	for _, id := range s.Podium {
		if _, ok := inGame[id]; !ok {
			return ErrPodiumNotSelected
		}
	}
	if s.Bubble != nil && *s.Bubble != uuid.Nil {
		if _, ok := inGame[*s.Bubble]; !ok {
			return ErrBubbleNotSelected
		}
	}
	for _, id := range s.FinalTable {
		if _, ok := inGame[id]; !ok {
			return ErrFinalTableNotSelected
		}
	}

	if s.GameDate.IsZero() {
		return ErrMissingDate
	}

	return nil
}

func (s GameSubmission) positionOf(id uuid.UUID) *int {
	for i, podium := range s.Podium {
		if podium == id {
			pos := i + 1
			return &pos
		}
	}
	return nil
}

// BuildResults turns a validated submission into result rows. Points are
// resolved here, once, and stored with the row.
func BuildResults(gameID uuid.UUID, s GameSubmission) []Result {
	finalTable := make(map[uuid.UUID]struct{}, len(s.FinalTable))
	for _, id := range s.FinalTable {
		finalTable[id] = struct{}{}
	}

	var results []Result
	for _, id := range s.Selected() {
		pos := s.positionOf(id)
		_, ft := finalTable[id]
		results = append(results, Result{
			ID:           uuid.New(),
			GameID:       gameID,
			PlayerID:     id,
			Position:     pos,
			Points:       PointsForPosition(pos),
			IsBubble:     s.Bubble != nil && *s.Bubble == id,
			IsFinalTable: ft,
		})
	}
	return results
}

type PointsPreview struct {
	PlayerID uuid.UUID
	Position *int
	Points   int
	IsBubble bool
}

// PreviewPoints shows what each attending player would score, highest first
func PreviewPoints(s GameSubmission) []PointsPreview {
	var rows []PointsPreview
	for _, r := range BuildResults(uuid.Nil, s) {
		rows = append(rows, PointsPreview{
			PlayerID: r.PlayerID,
			Position: r.Position,
			Points:   r.Points,
			IsBubble: r.IsBubble,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Points > rows[j].Points
	})
	return rows
}
