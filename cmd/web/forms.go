package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/AdamBeresnev/poker-league/internal/league"
	"github.com/AdamBeresnev/poker-league/internal/service"
	"github.com/AdamBeresnev/poker-league/internal/utils"
	"github.com/google/uuid"
)

var validationErrors = []error{
	league.ErrNotEnoughPlayers,
	league.ErrPodiumIncomplete,
	league.ErrDuplicatePodium,
	league.ErrPodiumNotSelected,
	league.ErrBubbleNotSelected,
	league.ErrFinalTableNotSelected,
	league.ErrMissingDate,
	service.ErrEmptyName,
}

func isValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// parseSubmission reads the results form. Missing fields are left empty for
// league.ValidateSubmission to report; only malformed values fail here.
func parseSubmission(r *http.Request) (league.GameSubmission, error) {
	var sub league.GameSubmission
	if err := r.ParseForm(); err != nil {
		return sub, fmt.Errorf("invalid form data: %w", err)
	}

	if date := strings.TrimSpace(r.Form.Get("game_date")); date != "" {
		d, err := league.ParseDate(date)
		if err != nil {
			return sub, fmt.Errorf("invalid game date %q", date)
		}
		sub.GameDate = d
	}
	sub.Notes = r.Form.Get("notes")

	var err error
	if sub.PlayerIDs, err = parseIDs(r.Form["players"]); err != nil {
		return sub, err
	}
	if sub.FinalTable, err = parseIDs(r.Form["final_table"]); err != nil {
		return sub, err
	}

	for i, field := range []string{"first", "second", "third"} {
		id, err := utils.ParseOptionalUUID(r.Form.Get(field))
		if err != nil {
			return sub, fmt.Errorf("invalid player for %s place", field)
		}
		sub.Podium[i] = id
	}

	bubble, err := utils.ParseOptionalUUID(r.Form.Get("bubble"))
	if err != nil {
		return sub, errors.New("invalid bubble player")
	}
	if bubble != uuid.Nil {
		sub.Bubble = &bubble
	}

	return sub, nil
}

func parseIDs(values []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		id, err := uuid.Parse(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("invalid player id %q", v)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
