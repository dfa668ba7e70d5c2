package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"medisafe-companion/internal/domain/medbox"
	"medisafe-companion/internal/platform/logger"
)

const (
	TopicPattern   = "medisafe/medbox/%s/weight"
	ClientIDPrefix = "medisafe-companion-"

	qos            = 1
	connectTimeout = 10 * time.Second
)

var ErrInvalidPayload = errors.New("invalid weight payload")

// WeightRecorder es el medbox.Service visto desde el listener.
type WeightRecorder interface {
	RecordWeight(ctx context.Context, w float64, source string) (medbox.MedBox, error)
}

type Config struct {
	Broker   string
	ClientID string // vacío => prefijo + uuid
	Username string
	Password string
	MedBoxID string
}

func (c Config) Topic() string {
	return fmt.Sprintf(TopicPattern, c.MedBoxID)
}

// Listener se suscribe al topic de peso del pastillero y registra cada lectura.
type Listener struct {
	cfg    Config
	client paho.Client
	rec    WeightRecorder
	log    logger.Logger
}

func NewListener(cfg Config, rec WeightRecorder, log logger.Logger) *Listener {
	if log == nil {
		log = logger.Nop()
	}
	if strings.TrimSpace(cfg.ClientID) == "" {
		cfg.ClientID = ClientIDPrefix + uuid.NewString()
	}

	opts := paho.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)

	l := &Listener{
		cfg: cfg,
		rec: rec,
		log: log.With(map[string]any{"adapter": "mqtt", "topic": cfg.Topic()}),
	}

	// al reconectar con clean session hay que volver a suscribirse
	opts.SetOnConnectHandler(func(c paho.Client) {
		if err := l.subscribe(c); err != nil {
			l.log.Error("mqtt subscribe failed", map[string]any{"err": err.Error()})
		}
	})
	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		l.log.Warn("mqtt connection lost", map[string]any{"err": err.Error()})
	})

	l.client = paho.NewClient(opts)
	return l
}

// Run conecta y bloquea hasta que ctx termina.
func (l *Listener) Run(ctx context.Context) error {
	token := l.client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return fmt.Errorf("connect to mqtt broker %s: timeout", l.cfg.Broker)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("connect to mqtt broker %s: %w", l.cfg.Broker, err)
	}
	l.log.Info("mqtt listener connected", map[string]any{"client_id": l.cfg.ClientID})

	<-ctx.Done()
	l.client.Disconnect(250)
	return nil
}

func (l *Listener) subscribe(c paho.Client) error {
	token := c.Subscribe(l.cfg.Topic(), qos, func(_ paho.Client, msg paho.Message) {
		// los callbacks de paho no traen contexto
		l.handle(context.Background(), msg.Payload())
	})
	token.Wait()
	return token.Error()
}

func (l *Listener) handle(ctx context.Context, payload []byte) {
	w, err := ParseWeight(payload)
	if err != nil {
		l.log.Warn("mqtt payload ignored", map[string]any{"err": err.Error(), "payload": string(payload)})
		return
	}
	if _, err := l.rec.RecordWeight(ctx, w, "mqtt"); err != nil {
		l.log.Error("record weight failed", map[string]any{"err": err.Error(), "weight": w})
	}
}

// ParseWeight acepta {"weight": 495.0} o un número suelto.
func ParseWeight(payload []byte) (float64, error) {
	s := strings.TrimSpace(string(payload))
	if s == "" {
		return 0, ErrInvalidPayload
	}

	if strings.HasPrefix(s, "{") {
		var in struct {
			Weight *float64 `json:"weight"`
		}
		if err := json.Unmarshal([]byte(s), &in); err != nil || in.Weight == nil {
			return 0, ErrInvalidPayload
		}
		return *in.Weight, nil
	}

	w, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidPayload
	}
	return w, nil
}
