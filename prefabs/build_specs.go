package prefabs

import (
	"github.com/milk9111/bardowalk/common"
	"github.com/milk9111/bardowalk/component"
)

// BuildPlayer turns a player prefab into the start-of-game player state.
func BuildPlayer(spec *PlayerSpec) component.Player {
	if spec == nil {
		return component.NewPlayer(common.Rect{Width: 26, Height: 36})
	}
	return component.NewPlayer(common.Rect{
		X:      spec.Sprite.X,
		Y:      spec.Sprite.Y,
		Width:  spec.Sprite.FrameW,
		Height: spec.Sprite.FrameH,
	})
}

// BuildTuning extracts the per-tick movement constants from a player prefab.
func BuildTuning(spec *PlayerSpec) component.Tuning {
	if spec == nil {
		return component.DefaultTuning()
	}
	return component.Tuning{
		Speed:              spec.MoveSpeed,
		FramesPerDirection: spec.FramesPerDirection,
	}
}
