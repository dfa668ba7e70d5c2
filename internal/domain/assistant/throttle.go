package assistant

import (
	"sync"
	"time"
)

const (
	InsightInterval  = 30 * time.Second
	DistressCooldown = 10 * time.Second
)

// state reúne las marcas de tiempo y flags del asistente (insight, distress)
// con un reloj inyectado.
type state struct {
	mu  sync.Mutex
	now func() time.Time

	lastInsightAt time.Time
	lastInsight   string

	lastDistressAt   time.Time
	distressInFlight bool
}

// insightDue reserva el turno si pasó InsightInterval. Devuelve el último texto si no.
func (s *state) insightDue() (bool, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if !s.lastInsightAt.IsZero() && now.Sub(s.lastInsightAt) < InsightInterval {
		return false, s.lastInsight
	}
	s.lastInsightAt = now
	return true, s.lastInsight
}

func (s *state) setInsight(text string) {
	s.mu.Lock()
	s.lastInsight = text
	s.mu.Unlock()
}

type distressGate string

const (
	gateOpen     distressGate = ""
	gateCooldown distressGate = "cooldown"
	gateInFlight distressGate = "in_flight"
)

// beginDistress aplica cooldown y un solo procesamiento a la vez.
func (s *state) beginDistress() distressGate {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.distressInFlight {
		return gateInFlight
	}
	now := s.now()
	if !s.lastDistressAt.IsZero() && now.Sub(s.lastDistressAt) < DistressCooldown {
		return gateCooldown
	}
	s.distressInFlight = true
	s.lastDistressAt = now
	return gateOpen
}

func (s *state) endDistress() {
	s.mu.Lock()
	s.distressInFlight = false
	s.mu.Unlock()
}
