package levels

import (
	"fmt"
	"math/rand"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/pollo/prefabs"
)

// Entity is one placed object in a generated layout.
type Entity struct {
	Type    string
	X       float64
	Y       float64
	Variant int
}

// Layout is the static placement data for one playthrough.
type Layout struct {
	Enemies     []Entity
	Coins       []Entity
	Bottles     []Entity
	Clouds      []Entity
	Backgrounds []Entity
	EndX        float64
}

// Generate runs the level script named by spec and converts its output. All
// randomness comes from rng, so a seeded rng reproduces a layout exactly.
func Generate(spec prefabs.LevelSpec, rng *rand.Rand) (*Layout, error) {
	if rng == nil {
		return nil, fmt.Errorf("levels: nil rng")
	}
	src, err := prefabs.LoadScript(spec.Script)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", spec.Script, err)
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	if err := script.Add("params", paramsFor(spec)); err != nil {
		return nil, fmt.Errorf("levels: params: %w", err)
	}
	randFn := &tengo.UserFunction{
		Name: "rand",
		Value: func(args ...tengo.Object) (tengo.Object, error) {
			return &tengo.Float{Value: rng.Float64()}, nil
		},
	}
	if err := script.Add("rand", randFn); err != nil {
		return nil, fmt.Errorf("levels: rand: %w", err)
	}

	compiled, err := script.Run()
	if err != nil {
		return nil, fmt.Errorf("levels: run %s: %w", spec.Script, err)
	}
	if !compiled.IsDefined("layout") {
		return nil, fmt.Errorf("levels: %s does not define layout", spec.Script)
	}
	layout, err := decodeLayout(compiled.Get("layout").Map())
	if err != nil {
		return nil, err
	}
	liftClouds(layout.Clouds, spec)
	return layout, nil
}

func paramsFor(spec prefabs.LevelSpec) map[string]interface{} {
	return map[string]interface{}{
		"length":         spec.Length,
		"end_x":          spec.EndX,
		"chickens":       spec.Chickens,
		"mini_chickens":  spec.MiniChickens,
		"enemy_jitter":   spec.EnemyJitter,
		"coins":          spec.Coins,
		"coin_min_y":     spec.CoinMinY,
		"coin_jitter_y":  spec.CoinJitterY,
		"bottles":        spec.Bottles,
		"item_min_x":     spec.ItemMinX,
		"clouds":         spec.Clouds,
		"cloud_min_x":    spec.CloudMinX,
		"cloud_jitter_x": spec.CloudJitterX,
		"backgrounds":    spec.Backgrounds,
		"background_x":   spec.BackgroundX,
		"background_dx":  spec.BackgroundDX,
	}
}

func decodeLayout(raw map[string]interface{}) (*Layout, error) {
	if raw == nil {
		return nil, fmt.Errorf("levels: layout is not a map")
	}
	var (
		out Layout
		err error
	)
	if out.Enemies, err = decodeEntities(raw, "enemies", ""); err != nil {
		return nil, err
	}
	if out.Coins, err = decodeEntities(raw, "coins", "coin"); err != nil {
		return nil, err
	}
	if out.Bottles, err = decodeEntities(raw, "bottles", "bottle"); err != nil {
		return nil, err
	}
	if out.Clouds, err = decodeEntities(raw, "clouds", "cloud"); err != nil {
		return nil, err
	}
	if out.Backgrounds, err = decodeEntities(raw, "backgrounds", "background"); err != nil {
		return nil, err
	}
	endX, ok := number(raw["end_x"])
	if !ok {
		return nil, fmt.Errorf("levels: end_x missing")
	}
	out.EndX = endX
	return &out, nil
}

func decodeEntities(raw map[string]interface{}, key, defaultType string) ([]Entity, error) {
	items, ok := raw[key].([]interface{})
	if !ok {
		return nil, fmt.Errorf("levels: %s must be an array", key)
	}
	out := make([]Entity, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("levels: %s[%d] must be a map", key, i)
		}
		x, ok := number(m["x"])
		if !ok {
			return nil, fmt.Errorf("levels: %s[%d].x missing", key, i)
		}
		e := Entity{Type: defaultType, X: x}
		if y, ok := number(m["y"]); ok {
			e.Y = y
		}
		if v, ok := number(m["variant"]); ok {
			e.Variant = int(v)
		}
		if kind, ok := m["kind"].(string); ok {
			e.Type = kind
		}
		if e.Type == "" {
			return nil, fmt.Errorf("levels: %s[%d] has no kind", key, i)
		}
		out = append(out, e)
	}
	return out, nil
}

func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
