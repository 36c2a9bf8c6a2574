package weather

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMock_Current(t *testing.T) {
	r, err := Mock{}.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 72, r.Temperature)
	assert.Equal(t, "Partly Cloudy", r.Condition)
	require.Len(t, r.Forecast, 3)
	assert.Equal(t, Forecast{Day: "Thursday", Condition: "Rainy", Temp: 68}, r.Forecast[1])
}

func TestIcon(t *testing.T) {
	assert.Equal(t, "☀️", Icon("Sunny"))
	assert.Equal(t, "⛅", Icon("Partly Cloudy"))
	assert.Equal(t, "🌤️", Icon("Hail"))
}
