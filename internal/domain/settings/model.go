package settings

const (
	DefaultMedBoxID       = "MB-7892"
	DefaultSnoozeDuration = 15

	MinSnoozeMinutes = 1
	MaxSnoozeMinutes = 240
)

// Settings es la fila única de preferencias.
type Settings struct {
	ID int64

	MedBoxID              string
	SnoozeDurationMinutes int

	NotificationsEnabled   bool
	VoiceAgentEnabled      bool
	DistressMonitorEnabled bool
	MinHealthSyncEnabled   bool
}

func Defaults() Settings {
	return Settings{
		MedBoxID:               DefaultMedBoxID,
		SnoozeDurationMinutes:  DefaultSnoozeDuration,
		NotificationsEnabled:   true,
		VoiceAgentEnabled:      true,
		DistressMonitorEnabled: true,
		MinHealthSyncEnabled:   false,
	}
}
