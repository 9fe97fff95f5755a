package preset

import (
	"fmt"
	"io"

	"github.com/arnodel/golua/lib"
	rt "github.com/arnodel/golua/runtime"

	"github.com/gogpu/gradient"
)

// Resource ceiling for one preset script.
const (
	luaCPULimit    = 10_000_000
	luaMemoryLimit = 50 * 1024 * 1024
)

// parseLua runs the script in a fresh runtime and reads the global
// "gradient" table it leaves behind.
func parseLua(data []byte) (p *Preset, err error) {
	r := rt.New(io.Discard)
	cleanup := lib.LoadAll(r)
	defer cleanup()

	closure, err := r.CompileAndLoadLuaChunk("preset", data, rt.TableValue(r.GlobalEnv()))
	if err != nil {
		return nil, fmt.Errorf("preset: compiling lua: %w", err)
	}

	r.PushContext(rt.RuntimeContextDef{
		HardLimits: rt.RuntimeResources{
			Cpu:    luaCPULimit,
			Memory: luaMemoryLimit,
		},
	})
	defer r.PopContext()

	// The runtime panics when a hard limit is exceeded.
	defer func() {
		if v := recover(); v != nil {
			p, err = nil, fmt.Errorf("%w: %v", ErrScriptLimit, v)
		}
	}()

	if _, err := rt.Call1(r.MainThread(), rt.FunctionValue(closure)); err != nil {
		return nil, fmt.Errorf("preset: running lua: %w", err)
	}

	t, ok := r.GlobalEnv().Get(rt.StringValue("gradient")).TryTable()
	if !ok {
		return nil, ErrMissingTable
	}
	return presetFromTable(t)
}

func presetFromTable(t *rt.Table) (*Preset, error) {
	p := Default()
	p.Stops = nil

	setString(t, "name", &p.Name)
	setString(t, "type", &p.Type)
	setFloat(t, "angle", &p.Angle)
	setFloat(t, "center_x", &p.CenterX)
	setFloat(t, "center_y", &p.CenterY)
	setFloat(t, "start_radius", &p.StartRadius)
	setFloat(t, "end_radius", &p.EndRadius)
	setFloat(t, "start_angle", &p.StartAngle)

	if v := t.Get(rt.StringValue("stops")); v != rt.NilValue {
		stops, ok := v.TryTable()
		if !ok {
			return nil, fmt.Errorf("preset: stops is not a table")
		}
		for i := int64(1); ; i++ {
			sv := stops.Get(rt.IntValue(i))
			if sv == rt.NilValue {
				break
			}
			st, ok := sv.TryTable()
			if !ok {
				return nil, fmt.Errorf("preset: stop %d is not a table", i)
			}
			var s Stop
			if !setString(st, "color", &s.Color) {
				return nil, fmt.Errorf("preset: stop %d: %w", i, gradient.ErrInvalidColorFormat)
			}
			setFloat(st, "pos", &s.Position)
			var op float64
			if setFloat(st, "opacity", &op) {
				s.Opacity = &op
			}
			p.Stops = append(p.Stops, s)
		}
	}

	if v := t.Get(rt.StringValue("outputs")); v != rt.NilValue {
		out, ok := v.TryTable()
		if !ok {
			return nil, fmt.Errorf("preset: outputs is not a table")
		}
		setBool(out, "css", &p.Outputs.CSS)
		setBool(out, "swift", &p.Outputs.Swift)
		setString(out, "swift_name", &p.Outputs.SwiftName)
		setBool(out, "swift_locations", &p.Outputs.SwiftLocations)
		setString(out, "image", &p.Outputs.Image)
		setString(out, "interpolation", &p.Outputs.Interpolation)
		var size float64
		if setFloat(out, "size", &size) {
			p.Outputs.Size = int(size)
		}
	}
	return p, nil
}

// setString stores a string field when present and reports whether it was.
func setString(t *rt.Table, key string, dst *string) bool {
	if s, ok := t.Get(rt.StringValue(key)).TryString(); ok {
		*dst = s
		return true
	}
	return false
}

// setFloat accepts both Lua integers and floats.
func setFloat(t *rt.Table, key string, dst *float64) bool {
	v := t.Get(rt.StringValue(key))
	if f, ok := v.TryFloat(); ok {
		*dst = f
		return true
	}
	if n, ok := v.TryInt(); ok {
		*dst = float64(n)
		return true
	}
	return false
}

func setBool(t *rt.Table, key string, dst *bool) bool {
	if b, ok := t.Get(rt.StringValue(key)).TryBool(); ok {
		*dst = b
		return true
	}
	return false
}
