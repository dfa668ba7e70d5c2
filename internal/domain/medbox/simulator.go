package medbox

import (
	"context"
	"math/rand/v2"
	"time"

	"medisafe-companion/internal/platform/logger"
)

const (
	DefaultSimulationInterval = 10 * time.Second
	DefaultSimulationChance   = 0.05
	DefaultSimulationStep     = 5.0
)

// Simulator imita al pastillero real cuando no hay MQTT: cada Interval, con probabilidad
// Chance, baja el peso Step gramos.
type Simulator struct {
	svc *Service
	log logger.Logger

	Interval time.Duration
	Chance   float64
	Step     float64

	rnd func() float64
}

func NewSimulator(svc *Service, log logger.Logger) *Simulator {
	if log == nil {
		log = logger.Nop()
	}
	return &Simulator{
		svc:      svc,
		log:      log.With(map[string]any{"component": "medbox_simulator"}),
		Interval: DefaultSimulationInterval,
		Chance:   DefaultSimulationChance,
		Step:     DefaultSimulationStep,
		rnd:      rand.Float64,
	}
}

// Tick hace una iteración. Devuelve true si simuló un cambio.
func (s *Simulator) Tick(ctx context.Context) bool {
	if s.rnd() >= s.Chance {
		return false
	}

	m, err := s.svc.Get(ctx)
	if err != nil {
		s.log.Warn("simulator read failed", map[string]any{"err": err})
		return false
	}

	w := m.CurrentWeightGrams - s.Step
	if w < 0 {
		w = 0
	}
	if _, err := s.svc.RecordWeight(ctx, w, "simulator"); err != nil {
		s.log.Warn("simulator write failed", map[string]any{"err": err})
		return false
	}
	return true
}

// Run bloquea hasta que ctx termina.
func (s *Simulator) Run(ctx context.Context) {
	t := time.NewTicker(s.Interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Tick(ctx)
		}
	}
}
