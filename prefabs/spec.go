package prefabs

import (
	"fmt"
	"time"

	"github.com/milk9111/pollo/component"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// AnimationSpec names a numbered frame sequence.
type AnimationSpec struct {
	Prefix string `yaml:"prefix"`
	Frames int    `yaml:"frames"`
}

// FrameSet expands the spec into frame keys.
func (a AnimationSpec) FrameSet() component.FrameSet {
	return component.NewFrameSet(a.Prefix, a.Frames)
}

type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type GravitySpec struct {
	GroundY      float64       `yaml:"ground_y"`
	Interval     time.Duration `yaml:"interval"`
	Acceleration float64       `yaml:"acceleration"`
}

type SoundCueSpec struct {
	Name   string  `yaml:"name"`
	Volume float64 `yaml:"volume"`
}

type WorldSpec struct {
	Name             string        `yaml:"name"`
	CanvasWidth      float64       `yaml:"canvas_width"`
	CanvasHeight     float64       `yaml:"canvas_height"`
	TickRate         int           `yaml:"tick_rate"`
	Gravity          GravitySpec   `yaml:"gravity"`
	CollectInterval  time.Duration `yaml:"collect_interval"`
	RunInterval      time.Duration `yaml:"run_interval"`
	EndCheckInterval time.Duration `yaml:"end_check_interval"`
	HUDInterval      time.Duration `yaml:"hud_interval"`
	LoseDelay        time.Duration `yaml:"lose_delay"`
	BottleCapacity   int           `yaml:"bottle_capacity"`
	ContactDamage    int           `yaml:"contact_damage"`
	BossContactDmg   int           `yaml:"boss_contact_damage"`
	StompRebound     float64       `yaml:"stomp_rebound"`
	StompReboundFor  time.Duration `yaml:"stomp_rebound_for"`
	BossProximity    float64       `yaml:"boss_proximity"`
	BossBarMax       float64       `yaml:"boss_bar_max"`
	Music            SoundCueSpec  `yaml:"music"`
	BossMusic        SoundCueSpec  `yaml:"boss_music"`
	WinSound         SoundCueSpec  `yaml:"win_sound"`
	LoseSound        SoundCueSpec  `yaml:"lose_sound"`
	CoinSound        SoundCueSpec  `yaml:"coin_sound"`
	ThrowSound       SoundCueSpec  `yaml:"throw_sound"`
	HurtSound        SoundCueSpec  `yaml:"hurt_sound"`
}

type CharacterSpec struct {
	Name              string                   `yaml:"name"`
	X                 float64                  `yaml:"x"`
	Y                 float64                  `yaml:"y"`
	Size              SizeSpec                 `yaml:"size"`
	Offset            component.Offset         `yaml:"offset"`
	Energy            int                      `yaml:"energy"`
	Speed             float64                  `yaml:"speed"`
	JumpSpeed         float64                  `yaml:"jump_speed"`
	HurtWindow        time.Duration            `yaml:"hurt_window"`
	CameraOffset      float64                  `yaml:"camera_offset"`
	MoveInterval      time.Duration            `yaml:"move_interval"`
	AnimInterval      time.Duration            `yaml:"anim_interval"`
	IdleInterval      time.Duration            `yaml:"idle_interval"`
	SleepAfter        time.Duration            `yaml:"sleep_after"`
	SleepBossDistance float64                  `yaml:"sleep_boss_distance"`
	DeathDelay        time.Duration            `yaml:"death_delay"`
	DeathFallInterval time.Duration            `yaml:"death_fall_interval"`
	DeathFallStep     float64                  `yaml:"death_fall_step"`
	WalkSound         SoundCueSpec             `yaml:"walk_sound"`
	JumpSound         SoundCueSpec             `yaml:"jump_sound"`
	SnoreSound        SoundCueSpec             `yaml:"snore_sound"`
	Animations        map[string]AnimationSpec `yaml:"animations"`
}

type ChickenSpec struct {
	Name         string                   `yaml:"name"`
	Y            float64                  `yaml:"y"`
	Size         SizeSpec                 `yaml:"size"`
	Offset       component.Offset         `yaml:"offset"`
	Energy       int                      `yaml:"energy"`
	SpeedMin     float64                  `yaml:"speed_min"`
	SpeedJitter  float64                  `yaml:"speed_jitter"`
	MoveInterval time.Duration            `yaml:"move_interval"`
	AnimInterval time.Duration            `yaml:"anim_interval"`
	HitDamage    int                      `yaml:"hit_damage"`
	HurtWindow   time.Duration            `yaml:"hurt_window"`
	DeathSound   SoundCueSpec             `yaml:"death_sound"`
	Animations   map[string]AnimationSpec `yaml:"animations"`
}

type HopSpec struct {
	Interval        time.Duration `yaml:"interval"`
	Chance          float64       `yaml:"chance"`
	Speed           float64       `yaml:"speed"`
	Decay           float64       `yaml:"decay"`
	GravityInterval time.Duration `yaml:"gravity_interval"`
	Cooldown        time.Duration `yaml:"cooldown"`
}

type MiniChickenSpec struct {
	ChickenSpec `yaml:",inline"`
	Hop         HopSpec `yaml:"hop"`
}

type EndbossSpec struct {
	Name              string                   `yaml:"name"`
	X                 float64                  `yaml:"x"`
	Y                 float64                  `yaml:"y"`
	Size              SizeSpec                 `yaml:"size"`
	Offset            component.Offset         `yaml:"offset"`
	Energy            int                      `yaml:"energy"`
	AnimInterval      time.Duration            `yaml:"anim_interval"`
	MoveInterval      time.Duration            `yaml:"move_interval"`
	DeadFrameInterval time.Duration            `yaml:"dead_frame_interval"`
	WinDelay          time.Duration            `yaml:"win_delay"`
	HurtWindow        time.Duration            `yaml:"hurt_window"`
	AttackRange       float64                  `yaml:"attack_range"`
	WakeX             float64                  `yaml:"wake_x"`
	WalkEnergyBelow   int                      `yaml:"walk_energy_below"`
	ChaseSpeed        float64                  `yaml:"chase_speed"`
	PursuitSpeed      float64                  `yaml:"pursuit_speed"`
	HitDamage         int                      `yaml:"hit_damage"`
	HitGate           time.Duration            `yaml:"hit_gate"`
	HurtSoundGate     time.Duration            `yaml:"hurt_sound_gate"`
	HurtSound         SoundCueSpec             `yaml:"hurt_sound"`
	Animations        map[string]AnimationSpec `yaml:"animations"`
}

type CoinSpec struct {
	Name      string           `yaml:"name"`
	Size      SizeSpec         `yaml:"size"`
	Offset    component.Offset `yaml:"offset"`
	Animation AnimationSpec    `yaml:"animation"`
}

type BottleSpec struct {
	Name         string           `yaml:"name"`
	Y            float64          `yaml:"y"`
	Size         SizeSpec         `yaml:"size"`
	Offset       component.Offset `yaml:"offset"`
	SpinInterval time.Duration    `yaml:"spin_interval"`
	Animation    AnimationSpec    `yaml:"animation"`
}

type ThrowSpec struct {
	SpeedY float64 `yaml:"speed_y"`
	StepX  float64 `yaml:"step_x"`
}

type BandSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type ThrowableSpec struct {
	Name           string                   `yaml:"name"`
	Size           SizeSpec                 `yaml:"size"`
	Offset         component.Offset         `yaml:"offset"`
	SpawnDX        float64                  `yaml:"spawn_dx"`
	SpawnDY        float64                  `yaml:"spawn_dy"`
	Right          ThrowSpec                `yaml:"right"`
	Left           ThrowSpec                `yaml:"left"`
	MoveInterval   time.Duration            `yaml:"move_interval"`
	RotateInterval time.Duration            `yaml:"rotate_interval"`
	SplashInterval time.Duration            `yaml:"splash_interval"`
	RemoveAfter    time.Duration            `yaml:"remove_after"`
	GroundBand     BandSpec                 `yaml:"ground_band"`
	Animations     map[string]AnimationSpec `yaml:"animations"`
}

type CloudSpec struct {
	Name         string        `yaml:"name"`
	Y            float64       `yaml:"y"`
	Size         SizeSpec      `yaml:"size"`
	Speed        float64       `yaml:"speed"`
	MoveInterval time.Duration `yaml:"move_interval"`
	Frame        string        `yaml:"frame"`
}

type BackgroundSpec struct {
	Name   string   `yaml:"name"`
	Size   SizeSpec `yaml:"size"`
	Layers []string `yaml:"layers"`
}

type LevelSpec struct {
	Name            string  `yaml:"name"`
	Script          string  `yaml:"script"`
	Length          float64 `yaml:"length"`
	EndX            float64 `yaml:"end_x"`
	Chickens        int     `yaml:"chickens"`
	MiniChickens    int     `yaml:"mini_chickens"`
	EnemyJitter     float64 `yaml:"enemy_jitter"`
	Coins           int     `yaml:"coins"`
	CoinMinY        float64 `yaml:"coin_min_y"`
	CoinJitterY     float64 `yaml:"coin_jitter_y"`
	Bottles         int     `yaml:"bottles"`
	ItemMinX        float64 `yaml:"item_min_x"`
	Clouds          int     `yaml:"clouds"`
	CloudMinX       float64 `yaml:"cloud_min_x"`
	CloudJitterX    float64 `yaml:"cloud_jitter_x"`
	// CloudLift is the most a cloud is raised above its spec y.
	CloudLift       float64 `yaml:"cloud_lift"`
	CloudNoiseSeed  int64   `yaml:"cloud_noise_seed"`
	CloudNoiseScale float64 `yaml:"cloud_noise_scale"`
	Backgrounds     int     `yaml:"backgrounds"`
	BackgroundX     float64 `yaml:"background_x"`
	BackgroundDX    float64 `yaml:"background_dx"`
}

type ClipSpec struct {
	Wave     string        `yaml:"wave"`
	Freq     float64       `yaml:"freq"`
	FreqEnd  float64       `yaml:"freq_end"`
	Duration time.Duration `yaml:"duration"`
	Attack   time.Duration `yaml:"attack"`
	Release  time.Duration `yaml:"release"`
	Gain     float64       `yaml:"gain"`
	Loop     bool          `yaml:"loop"`
	Notes    []float64     `yaml:"notes"`
}

type AudioSpec struct {
	SampleRate int                 `yaml:"sample_rate"`
	Clips      map[string]ClipSpec `yaml:"clips"`
}
