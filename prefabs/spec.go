package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	GameSpecFile   = "game.yaml"
	PlayerSpecFile = "player.yaml"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

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

// GameSpec configures the window, tick rate and spritesheet.
type GameSpec struct {
	Title  string  `yaml:"title"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	TPS    int     `yaml:"tps"`
	Sheet  string  `yaml:"sheet"`
	HUD    HUDSpec `yaml:"hud"`
}

type HUDSpec struct {
	Color *YAMLColor `yaml:"color"`
	X     float64    `yaml:"x"`
	Y     float64    `yaml:"y"`
}

func (s GameSpec) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidSpec, s.Width, s.Height)
	}
	if s.TPS <= 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalidSpec, s.TPS)
	}
	if s.Sheet == "" {
		return fmt.Errorf("%w: empty sheet path", ErrInvalidSpec)
	}
	return nil
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec](GameSpecFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", GameSpecFile, err)
	}
	return &spec, nil
}

// PlayerSpec configures the walking sprite.
type PlayerSpec struct {
	Name               string     `yaml:"name"`
	MoveSpeed          int        `yaml:"move_speed"`
	FramesPerDirection int        `yaml:"frames_per_direction"`
	Sprite             SpriteSpec `yaml:"sprite"`
}

// SpriteSpec is frame 0 of row 0 on the sheet. Every frame has its size.
type SpriteSpec struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	FrameW int `yaml:"frame_w"`
	FrameH int `yaml:"frame_h"`
}

func (s PlayerSpec) Validate() error {
	if s.MoveSpeed < 0 {
		return fmt.Errorf("%w: negative move_speed %d", ErrInvalidSpec, s.MoveSpeed)
	}
	if s.FramesPerDirection <= 0 {
		return fmt.Errorf("%w: frames_per_direction %d", ErrInvalidSpec, s.FramesPerDirection)
	}
	if s.Sprite.FrameW <= 0 || s.Sprite.FrameH <= 0 {
		return fmt.Errorf("%w: frame size %dx%d", ErrInvalidSpec, s.Sprite.FrameW, s.Sprite.FrameH)
	}
	return nil
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerSpecFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", PlayerSpecFile, err)
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
