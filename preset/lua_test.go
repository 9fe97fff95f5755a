package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gradient"
)

func TestParseLua(t *testing.T) {
	src := `
gradient = {
  name = "sunset",
  type = "conic",
  center_x = 40,
  start_angle = 15.5,
  stops = {
    { color = "#f00", pos = 0 },
    { color = "teal", pos = 60, opacity = 0.5 },
  },
  outputs = { swift = true, swift_name = "sun set", size = 128 },
}
`
	p, err := Parse([]byte(src), Lua)
	require.NoError(t, err)

	assert.Equal(t, "sunset", p.Name)
	assert.Equal(t, "conic", p.Type)
	assert.Equal(t, 40.0, p.CenterX)
	assert.Equal(t, 50.0, p.CenterY)
	assert.Equal(t, 15.5, p.StartAngle)
	require.Len(t, p.Stops, 2)
	assert.Equal(t, Stop{Color: "#f00", Position: 0}, p.Stops[0])
	require.NotNil(t, p.Stops[1].Opacity)
	assert.Equal(t, 0.5, *p.Stops[1].Opacity)
	assert.Equal(t, Outputs{Swift: true, SwiftName: "sun set", Size: 128}, p.Outputs)

	d, err := p.Descriptor()
	require.NoError(t, err)
	assert.Equal(t, gradient.Angular, d.Type())
}

// Scripts can compute their stops.
func TestParseLuaGeneratedStops(t *testing.T) {
	src := `
local stops = {}
for i = 0, 4 do
  local v = string.format("#%02x%02x%02x", i * 60, 0, 255 - i * 60)
  stops[#stops + 1] = { color = v, pos = i * 25 }
end
gradient = { type = "linear", angle = 45, stops = stops }
`
	p, err := Parse([]byte(src), Lua)
	require.NoError(t, err)
	require.Len(t, p.Stops, 5)
	assert.Equal(t, "#f0000f", p.Stops[4].Color)
	assert.Equal(t, 100.0, p.Stops[4].Position)
}

func TestParseLuaErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"syntax", "gradient = {", "compiling lua"},
		{"runtime", "error('boom')", "running lua"},
		{"stops not a table", "gradient = { stops = 3 }", "stops is not a table"},
		{"stop not a table", "gradient = { stops = { 1 } }", "stop 1 is not a table"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), Lua)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	_, err := Parse([]byte("x = 1"), Lua)
	require.ErrorIs(t, err, ErrMissingTable)

	_, err = Parse([]byte("gradient = { stops = { { pos = 3 } } }"), Lua)
	require.ErrorIs(t, err, gradient.ErrInvalidColorFormat)
}

func TestParseLuaRunawayScript(t *testing.T) {
	_, err := Parse([]byte("while true do end"), Lua)
	require.ErrorIs(t, err, ErrScriptLimit)
}
