package profile

const (
	DefaultName      = "Patient"
	DefaultCondition = "Chronic Condition"
)

// Profile es la ficha del paciente. Hay una sola fila.
type Profile struct {
	ID          int64
	Name        string
	Condition   string
	DoctorNotes string
}
