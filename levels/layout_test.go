package levels

import (
	"math/rand"
	"testing"

	"github.com/milk9111/pollo/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func levelSpec(t *testing.T) prefabs.LevelSpec {
	t.Helper()
	spec, err := prefabs.LoadSpec[prefabs.LevelSpec]("level.yaml")
	require.NoError(t, err)
	return spec
}

func TestGenerateCounts(t *testing.T) {
	spec := levelSpec(t)
	layout, err := Generate(spec, rand.New(rand.NewSource(12345)))
	require.NoError(t, err)

	assert.Len(t, layout.Enemies, spec.Chickens+spec.MiniChickens)
	assert.Len(t, layout.Coins, spec.Coins)
	assert.Len(t, layout.Bottles, spec.Bottles)
	assert.Len(t, layout.Clouds, spec.Clouds)
	assert.Len(t, layout.Backgrounds, spec.Backgrounds)
	assert.Equal(t, spec.EndX, layout.EndX)
}

func TestGenerateEnemyPlacement(t *testing.T) {
	spec := levelSpec(t)
	layout, err := Generate(spec, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	spacing := float64(int(spec.EndX-spec.EnemyJitter) / (spec.Chickens + spec.MiniChickens))
	for i, e := range layout.Enemies {
		want := "chicken"
		if i >= spec.Chickens {
			want = "mini_chicken"
		}
		assert.Equal(t, want, e.Type, "enemy %d", i)

		base := float64(i+1) * spacing
		assert.GreaterOrEqual(t, e.X, base-spec.EnemyJitter, "enemy %d", i)
		assert.Less(t, e.X, base+spec.EnemyJitter, "enemy %d", i)
	}
}

func TestGenerateEnemiesBeforeEnd(t *testing.T) {
	spec := levelSpec(t)
	for seed := int64(1); seed <= 50; seed++ {
		layout, err := Generate(spec, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		for i, e := range layout.Enemies {
			assert.Less(t, e.X, spec.EndX, "seed %d enemy %d", seed, i)
		}
	}
}

func TestGenerateItemBounds(t *testing.T) {
	spec := levelSpec(t)
	layout, err := Generate(spec, rand.New(rand.NewSource(99)))
	require.NoError(t, err)

	for _, c := range layout.Coins {
		assert.Equal(t, "coin", c.Type)
		assert.GreaterOrEqual(t, c.X, spec.ItemMinX)
		assert.Less(t, c.X, spec.Length)
		assert.GreaterOrEqual(t, c.Y, spec.CoinMinY)
		assert.Less(t, c.Y, spec.CoinMinY+spec.CoinJitterY)
	}
	for _, b := range layout.Bottles {
		assert.GreaterOrEqual(t, b.X, spec.ItemMinX)
		assert.Less(t, b.X, spec.Length)
	}
}

func TestGenerateBackgroundsTile(t *testing.T) {
	spec := levelSpec(t)
	layout, err := Generate(spec, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	wantX := []float64{-719, 0, 719, 1438, 2157}
	wantVariant := []int{2, 1, 2, 1, 2}
	require.Len(t, layout.Backgrounds, len(wantX))
	for i, bg := range layout.Backgrounds {
		assert.Equal(t, wantX[i], bg.X)
		assert.Equal(t, wantVariant[i], bg.Variant)
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	spec := levelSpec(t)
	a, err := Generate(spec, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := Generate(spec, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := Generate(spec, rand.New(rand.NewSource(43)))
	require.NoError(t, err)
	assert.NotEqual(t, a.Coins, c.Coins)
}

func TestGenerateRejectsMissingScript(t *testing.T) {
	spec := levelSpec(t)
	spec.Script = "does_not_exist.tengo"
	_, err := Generate(spec, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestGenerateRejectsNilRand(t *testing.T) {
	_, err := Generate(levelSpec(t), nil)
	assert.Error(t, err)
}

func TestGenerateLiftsClouds(t *testing.T) {
	spec := levelSpec(t)
	spec.Clouds = 8
	layout, err := Generate(spec, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	for i, c := range layout.Clouds {
		assert.LessOrEqual(t, c.Y, 0.0, "cloud %d", i)
		assert.GreaterOrEqual(t, c.Y, -spec.CloudLift, "cloud %d", i)
	}

	spec.CloudLift = 0
	flat, err := Generate(spec, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	for i, c := range flat.Clouds {
		assert.Equal(t, 0.0, c.Y, "cloud %d", i)
		assert.Equal(t, layout.Clouds[i].X, c.X, "cloud %d", i)
	}
}
