package mqtt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medisafe-companion/internal/domain/medbox"
)

func TestParseWeight(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: `{"weight": 495.0}`, want: 495},
		{in: `{"weight":0}`, want: 0},
		{in: ` 487.5 `, want: 487.5},
		{in: `{"grams": 1}`, wantErr: true},
		{in: `{"weight": "heavy"}`, wantErr: true},
		{in: `abc`, wantErr: true},
		{in: ``, wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseWeight([]byte(tt.in))
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidPayload, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

type fakeRecorder struct {
	weights []float64
	sources []string
	err     error
}

func (f *fakeRecorder) RecordWeight(_ context.Context, w float64, source string) (medbox.MedBox, error) {
	f.weights = append(f.weights, w)
	f.sources = append(f.sources, source)
	return medbox.MedBox{CurrentWeightGrams: w}, f.err
}

func TestListener_Handle(t *testing.T) {
	rec := &fakeRecorder{}
	l := NewListener(Config{Broker: "tcp://127.0.0.1:1883", MedBoxID: "MB-7892"}, rec, nil)

	assert.Equal(t, "medisafe/medbox/MB-7892/weight", l.cfg.Topic())
	assert.True(t, strings.HasPrefix(l.cfg.ClientID, ClientIDPrefix))

	l.handle(context.Background(), []byte(`{"weight": 490}`))
	l.handle(context.Background(), []byte(`garbage`))

	assert.Equal(t, []float64{490}, rec.weights)
	assert.Equal(t, []string{"mqtt"}, rec.sources)

	rec.err = errors.New("db down")
	l.handle(context.Background(), []byte(`480`))
	assert.Len(t, rec.weights, 2)
}
