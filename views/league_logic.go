package views

import (
	"sort"
	"time"

	"github.com/AdamBeresnev/poker-league/internal/league"
	"github.com/google/uuid"
)

// Unplaced results sort after every finishing position.
const unplacedOrder = 99

type ResultRow struct {
	league.Result
	PlayerName string
}

type HistoryEntry struct {
	Game league.Game
	// Podium finishers, 1st to 3rd
	Podium []ResultRow
	Others []ResultRow
}

func (e HistoryEntry) PlayerCount() int {
	return len(e.Podium) + len(e.Others)
}

// PrepareHistory groups results under their game. Games keep the order they
// are given in; within a game the podium comes first.
func PrepareHistory(games []league.Game, results []league.Result, players []league.Player) []HistoryEntry {
	names := make(map[uuid.UUID]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}

	byGame := make(map[uuid.UUID][]ResultRow)
	for _, r := range results {
		name, ok := names[r.PlayerID]
		if !ok {
			name = league.UnknownPlayerName
		}
		byGame[r.GameID] = append(byGame[r.GameID], ResultRow{Result: r, PlayerName: name})
	}

	entries := make([]HistoryEntry, 0, len(games))
	for _, g := range games {
		rows := byGame[g.ID]
		sortRows(rows)

		entry := HistoryEntry{Game: g}
		for _, row := range rows {
			if row.IsPodium() {
				entry.Podium = append(entry.Podium, row)
			} else {
				entry.Others = append(entry.Others, row)
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

func sortRows(rows []ResultRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return positionOrder(rows[i].Position) < positionOrder(rows[j].Position)
	})
}

func positionOrder(pos *int) int {
	if pos == nil {
		return unplacedOrder
	}
	return *pos
}

// GameForm is the state of the results form, either blank, loaded from a
// stored game, or echoed back after a failed submission.
type GameForm struct {
	Date       string
	Notes      string
	Selected   map[uuid.UUID]bool
	Podium     [3]uuid.UUID
	Bubble     uuid.UUID
	FinalTable map[uuid.UUID]bool
}

func NewGameForm(today time.Time) GameForm {
	return GameForm{
		Date:       today.Format(league.DateLayout),
		Selected:   map[uuid.UUID]bool{},
		FinalTable: map[uuid.UUID]bool{},
	}
}

func GameFormFromResults(game league.Game, results []league.Result) GameForm {
	form := NewGameForm(game.GameDate)
	if game.Notes != nil {
		form.Notes = *game.Notes
	}
	for _, r := range results {
		form.Selected[r.PlayerID] = true
		if r.IsPodium() {
			form.Podium[*r.Position-1] = r.PlayerID
		}
		if r.IsBubble {
			form.Bubble = r.PlayerID
		}
		if r.IsFinalTable {
			form.FinalTable[r.PlayerID] = true
		}
	}
	return form
}

func GameFormFromSubmission(sub league.GameSubmission) GameForm {
	form := GameForm{
		Notes:      sub.Notes,
		Podium:     sub.Podium,
		Selected:   map[uuid.UUID]bool{},
		FinalTable: map[uuid.UUID]bool{},
	}
	if !sub.GameDate.IsZero() {
		form.Date = sub.GameDate.Format(league.DateLayout)
	}
	for _, id := range sub.PlayerIDs {
		form.Selected[id] = true
	}
	if sub.Bubble != nil {
		form.Bubble = *sub.Bubble
	}
	for _, id := range sub.FinalTable {
		form.FinalTable[id] = true
	}
	return form
}

// FormPlayers is the active roster plus anyone already in the game, so editing
// an old game never silently drops a player who has since been deactivated.
func FormPlayers(roster []league.Player, form GameForm) []league.Player {
	var out []league.Player
	for _, p := range roster {
		if p.Active || form.Selected[p.ID] {
			out = append(out, p)
		}
	}
	return out
}
