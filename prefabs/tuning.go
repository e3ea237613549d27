package prefabs

import "fmt"

// Tuning is every prefab spec a session needs.
type Tuning struct {
	World       WorldSpec
	Character   CharacterSpec
	Chicken     ChickenSpec
	MiniChicken MiniChickenSpec
	Endboss     EndbossSpec
	Coin        CoinSpec
	Bottle      BottleSpec
	Throwable   ThrowableSpec
	Cloud       CloudSpec
	Background  BackgroundSpec
	Level       LevelSpec
	Audio       AudioSpec
}

// LoadTuning reads all prefab specs.
func LoadTuning() (*Tuning, error) {
	var t Tuning
	loaders := []struct {
		file string
		load func(string) error
	}{
		{"world.yaml", into(&t.World)},
		{"character.yaml", into(&t.Character)},
		{"chicken.yaml", into(&t.Chicken)},
		{"mini_chicken.yaml", into(&t.MiniChicken)},
		{"endboss.yaml", into(&t.Endboss)},
		{"coin.yaml", into(&t.Coin)},
		{"bottle.yaml", into(&t.Bottle)},
		{"throwable.yaml", into(&t.Throwable)},
		{"cloud.yaml", into(&t.Cloud)},
		{"background.yaml", into(&t.Background)},
		{"level.yaml", into(&t.Level)},
		{"audio.yaml", into(&t.Audio)},
	}
	for _, l := range loaders {
		if err := l.load(l.file); err != nil {
			return nil, err
		}
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// MustLoadTuning is LoadTuning for callers that cannot recover, such as
// tests running against the embedded specs.
func MustLoadTuning() *Tuning {
	t, err := LoadTuning()
	if err != nil {
		panic(err)
	}
	return t
}

func into[T any](dst *T) func(string) error {
	return func(file string) error {
		spec, err := LoadSpec[T](file)
		if err != nil {
			return err
		}
		*dst = spec
		return nil
	}
}

func (t *Tuning) validate() error {
	if t.World.TickRate <= 0 {
		return fmt.Errorf("prefabs: world.yaml: tick_rate must be positive")
	}
	if t.World.BottleCapacity <= 0 {
		return fmt.Errorf("prefabs: world.yaml: bottle_capacity must be positive")
	}
	if t.World.Gravity.Interval <= 0 {
		return fmt.Errorf("prefabs: world.yaml: gravity.interval must be positive")
	}
	if t.Level.Script == "" {
		return fmt.Errorf("prefabs: level.yaml: script is required")
	}
	return nil
}
