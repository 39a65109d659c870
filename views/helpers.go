package views

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/AdamBeresnev/poker-league/internal/league"
	"github.com/AdamBeresnev/poker-league/internal/middleware"
	"github.com/AdamBeresnev/poker-league/internal/organizer"
)

func GetOrganizer(ctx context.Context) *organizer.Organizer {
	return middleware.GetOrganizer(ctx)
}

func IsOrganizer(ctx context.Context) bool {
	return GetOrganizer(ctx) != nil
}

// FormatDate renders a game date the way the league calendar shows it, e.g. "Thu 14 Mar 2024".
func FormatDate(t time.Time) string {
	return t.Format("Mon 2 Jan 2006")
}

// FormatMoney groups thousands with commas: FormatMoney("R", 12500) is "R12,500".
func FormatMoney(currency string, amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.Itoa(amount)
	out := make([]byte, 0, len(digits)+len(digits)/3)
	for i := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i])
	}
	return sign + currency + string(out)
}

func QualificationLabel(games int) string {
	if left := league.GamesToQualify(games); left > 0 {
		return fmt.Sprintf("%d more to qualify", left)
	}
	return "Qualified"
}

func PointsLabel(points int) string {
	if points == 1 {
		return "1 pt"
	}
	return fmt.Sprintf("%d pts", points)
}

func RankClass(rank int) string {
	switch rank {
	case 1:
		return "rank gold"
	case 2:
		return "rank silver"
	case 3:
		return "rank bronze"
	}
	return "rank"
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
