package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"medisafe-companion/internal/domain/doselogs"
	"medisafe-companion/internal/domain/medbox"
	"medisafe-companion/internal/domain/medications"
	"medisafe-companion/internal/domain/profile"
)

// textos fijos cuando el modelo falla o no está configurado
const (
	FallbackChat          = "I'm having trouble connecting right now. Please try again in a moment."
	FallbackSummary       = "Failed to generate summary. Please check your connection and API key."
	EmptySummary          = "No summary generated."
	DefaultInsight        = "Stay hydrated and follow your schedule."
	QuotaInsight          = "Monitoring your health patterns. Everything looks stable."
	DistressAck           = "I heard a distress signal. What happened? I'm here to help."
	DistressEmpty         = "Please stay calm. Help is being notified."
	QuotaDistress         = "I detected a distress signal. Please stay calm. If this is an emergency, please call for help immediately."
	EmptyDisclaimer       = "Delaying medication can lead to complications."
	summaryLogLimit       = 20
	ingestionVerifyPrompt = "Analyze this video frame. Is the patient swallowing their medication? Answer only 'YES' if you see them putting a pill in their mouth and swallowing, otherwise 'NO'."
)

type medboxContext struct {
	CurrentWeightGrams float64 `json:"current_weight_grams"`
	LastWeightGrams    float64 `json:"last_weight_grams"`
	Status             string  `json:"status"`
}

func chatPrompt(message string, p profile.Profile, meds []medications.Medication, box medbox.MedBox) string {
	names := make([]string, 0, len(meds))
	for _, m := range meds {
		names = append(names, m.Name)
	}
	boxJSON, _ := json.Marshal(medboxContext{
		CurrentWeightGrams: box.CurrentWeightGrams,
		LastWeightGrams:    box.LastWeightGrams,
		Status:             box.Status,
	})

	var b strings.Builder
	b.WriteString("You are MediSafe Agent, a supportive AI companion for a patient with chronic illness.\n")
	b.WriteString("Your goal is to help them manage their health, stay positive, and ensure they take their meds.\n\n")
	b.WriteString("Context:\n")
	fmt.Fprintf(&b, "- Patient Name: %s\n", p.Name)
	fmt.Fprintf(&b, "- Condition: %s\n", p.Condition)
	fmt.Fprintf(&b, "- Current Meds: %s\n", strings.Join(names, ", "))
	fmt.Fprintf(&b, "- MedBox Status: %s\n\n", boxJSON)
	fmt.Fprintf(&b, "User Message: %s\n\n", message)
	b.WriteString("Respond with empathy, professional but warm tone. If they seem very ill, advise them to contact their doctor.\n")
	b.WriteString("You can send notifications, talk to the patient, or wake up if needed.")
	return b.String()
}

func summaryPrompt(p profile.Profile, meds []medications.Medication, logs []doselogs.EntryView) string {
	var b strings.Builder
	b.WriteString("As a medical AI assistant, generate a concise summary for a doctor about this patient's recent health history.\n\n")
	b.WriteString("Patient Profile:\n")
	fmt.Fprintf(&b, "- Name: %s\n- Condition: %s\n- Doctor's Notes: %s\n\n", p.Name, p.Condition, p.DoctorNotes)

	b.WriteString("Current Medications:\n")
	for _, m := range meds {
		fmt.Fprintf(&b, "- %s (%s, %s) at %s\n", m.Name, m.Dosage, m.Frequency, m.Time)
	}

	fmt.Fprintf(&b, "\nRecent Logs (Last %d entries):\n", summaryLogLimit)
	for i, l := range logs {
		if i == summaryLogLimit {
			break
		}
		name := l.MedicationName
		switch {
		case l.Orphaned:
			name = "Removed medication"
		case name == "":
			name = "General"
		}
		fmt.Fprintf(&b, "- %s: %s - Status: %s, Mood: %s, Notes: %s\n",
			l.Timestamp.Format("2006-01-02 15:04"), name, l.Status, l.Mood, l.Notes)
	}

	b.WriteString("\nPlease provide:\n")
	b.WriteString("1. A summary of medication adherence.\n")
	b.WriteString("2. Trends in mood or symptoms.\n")
	b.WriteString("3. Any critical alerts or missed doses that need immediate attention.\n")
	b.WriteString("4. A concise \"Doctor's Brief\" for quick decision making.")
	return b.String()
}

type insightMed struct {
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
	Time   string `json:"time"`
}

func insightPrompt(p profile.Profile, meds []medications.Medication) string {
	pj, _ := json.Marshal(map[string]string{
		"name":         p.Name,
		"condition":    p.Condition,
		"doctor_notes": p.DoctorNotes,
	})
	ms := make([]insightMed, 0, len(meds))
	for _, m := range meds {
		ms = append(ms, insightMed{Name: m.Name, Dosage: m.Dosage, Time: m.Time})
	}
	mj, _ := json.Marshal(ms)
	return fmt.Sprintf("Based on patient profile: %s and meds: %s, provide a one-sentence health insight for today.", pj, mj)
}

func distressPrompt(condition string) string {
	return fmt.Sprintf("The patient (%s) just screamed or made a loud distress noise. Provide immediate, calm first-aid instructions for their condition. Also, assess their likely mood (e.g., 'Panic', 'Pain', 'Fear').", condition)
}

func emergencyMessage(condition, context string) string {
	return fmt.Sprintf("EMERGENCY: Distress detected for patient with %s. Context: %s", condition, context)
}

func disclaimerPrompt(m medications.Medication, condition string) string {
	return fmt.Sprintf("The patient wants to snooze their %s (%s). Their condition is %s. Provide a serious medical disclaimer about the risks of delaying this specific medication. Keep it concise but urgent.", m.Name, m.Dosage, condition)
}

// ExtractMood toma el ánimo probable del texto de primeros auxilios.
func ExtractMood(text string) string {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "panic"):
		return "Panic"
	case strings.Contains(t, "pain"):
		return "Pain"
	case strings.Contains(t, "fear"):
		return "Fear"
	default:
		return "Distressed"
	}
}
