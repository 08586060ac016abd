package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec reads and decodes a named spec file, preferring an on-disk
// copy over the embedded one so tuning values can be edited live.
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

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PlayerSpec struct {
	Name           string       `yaml:"name"`
	MoveSpeed      float64      `yaml:"move_speed"`
	Acceleration   float64      `yaml:"acceleration"`
	Friction       float64      `yaml:"friction"`
	JumpSpeed      float64      `yaml:"jump_speed"`
	RunMultiplier  float64      `yaml:"run_multiplier"`
	JumpBufferTime float64      `yaml:"jump_buffer_time"`
	CoyoteTime     float64      `yaml:"coyote_time"`
	Lives          int          `yaml:"lives"`
	Collider       ColliderSpec `yaml:"collider"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ShellSpec struct {
	Duration  float64 `yaml:"duration"`
	Height    float64 `yaml:"height"`
	StunTime  float64 `yaml:"stun_time"`
	KickSpeed float64 `yaml:"kick_speed"`
}

type PipeSpec struct {
	PopDuration  float64 `yaml:"pop_duration"`
	HideDuration float64 `yaml:"hide_duration"`
	Offset       float64 `yaml:"offset"`
}

type FlightSpec struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	Spring    float64 `yaml:"spring"`
}

type EnemySpec struct {
	Name           string       `yaml:"name"`
	Speed          float64      `yaml:"speed"`
	PatrolDistance float64      `yaml:"patrol_distance"`
	Stompable      bool         `yaml:"stompable"`
	StompPoints    int          `yaml:"stomp_points"`
	Collider       ColliderSpec `yaml:"collider"`
	Shell          ShellSpec    `yaml:"shell"`
	Pipe           PipeSpec     `yaml:"pipe"`
	Flight         FlightSpec   `yaml:"flight"`
}

// LoadEnemySpec loads the spec file for the named enemy kind, e.g.
// "goomba" reads goomba.yaml.
func LoadEnemySpec(kind string) (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec](kind + ".yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CoinSpec struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BobAmplitude float64 `yaml:"bob_amplitude"`
	BobFrequency float64 `yaml:"bob_frequency"`
}

type MushroomSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

type FireFlowerSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type ItemSpec struct {
	Coin       CoinSpec       `yaml:"coin"`
	Mushroom   MushroomSpec   `yaml:"mushroom"`
	FireFlower FireFlowerSpec `yaml:"fire_flower"`
}

func LoadItemSpec() (*ItemSpec, error) {
	spec, err := LoadSpec[ItemSpec]("items.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CameraSpec struct {
	Smoothing float64 `yaml:"smoothing"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
