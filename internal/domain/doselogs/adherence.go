package doselogs

import (
	"fmt"
	"math"
	"time"
)

const adherenceBand = 5.0

type Adherence struct {
	TodayPercent float64
	PastPercent  float64
	Message      string
}

// CompareAdherence separa los registros de hoy (fecha calendario de now, en su zona)
// del resto y compara el % de "taken" de cada grupo.
func CompareAdherence(items []EntryView, now time.Time) Adherence {
	if len(items) < 2 {
		return Adherence{Message: "Not enough data to compare."}
	}

	y, m, d := now.Date()
	var todayTotal, todayTaken, pastTotal, pastTaken int
	for _, it := range items {
		ty, tm, td := it.Timestamp.In(now.Location()).Date()
		isToday := ty == y && tm == m && td == d
		if isToday {
			todayTotal++
			if it.Status == StatusTaken {
				todayTaken++
			}
			continue
		}
		pastTotal++
		if it.Status == StatusTaken {
			pastTaken++
		}
	}

	out := Adherence{
		TodayPercent: percent(todayTaken, todayTotal),
		PastPercent:  percent(pastTaken, pastTotal),
	}

	diff := out.TodayPercent - out.PastPercent
	switch {
	case diff > adherenceBand:
		out.Message = fmt.Sprintf("Your healing progress is up by %d%% compared to previous days! Keep it up.", int(math.Round(diff)))
	case diff < -adherenceBand:
		out.Message = fmt.Sprintf("Your adherence is down by %d%% today. MediSafe AI recommends staying on schedule for optimal healing.", int(math.Round(math.Abs(diff))))
	default:
		out.Message = "Your healing progress is stable and consistent with your history."
	}
	return out
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
