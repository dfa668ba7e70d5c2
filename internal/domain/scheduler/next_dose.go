package scheduler

import (
	"sort"
	"time"

	"medisafe-companion/internal/domain/medications"
)

// SelectNextDose ordena por hora y devuelve la primera cuya hora "HH:MM" es estrictamente
// mayor que la de now; si ya pasaron todas, vuelve a la más temprana. false solo si meds está vacío.
func SelectNextDose(meds []medications.Medication, now time.Time) (medications.Medication, bool) {
	if len(meds) == 0 {
		return medications.Medication{}, false
	}

	sorted := make([]medications.Medication, len(meds))
	copy(sorted, meds)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Time == sorted[j].Time {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].Time < sorted[j].Time
	})

	cur := now.Format(medications.TimeLayout)
	for _, m := range sorted {
		if m.Time > cur {
			return m, true
		}
	}
	return sorted[0], true
}

// ScheduledInstant ancla "HH:MM" a la fecha calendario de now (en su zona).
func ScheduledInstant(hhmm string, now time.Time) (time.Time, bool) {
	t, err := time.Parse(medications.TimeLayout, hhmm)
	if err != nil {
		return time.Time{}, false
	}
	y, m, d := now.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, now.Location()), true
}
