package system

import (
	"github.com/younwookim/ledgeline/internal/domain/clock"
	"github.com/younwookim/ledgeline/internal/infrastructure/config"
)

// Tuning is the physics config with its time windows converted to frames
type Tuning struct {
	config.PhysicsConfig

	CoyoteFrames        int64
	JumpBufferFrames    int64
	LedgeCooldownFrames int64
	SlideBufferFrames   int64
}

// NewTuning derives frame windows from cfg. A nil cfg uses the defaults.
func NewTuning(cfg *config.PhysicsConfig) *Tuning {
	if cfg == nil {
		cfg = config.DefaultPhysics()
	}
	rate := cfg.Display.TickRate
	return &Tuning{
		PhysicsConfig:       *cfg,
		CoyoteFrames:        clock.FramesFor(cfg.Jump.CoyoteTime, rate),
		JumpBufferFrames:    clock.FramesFor(cfg.Jump.JumpBuffer, rate),
		LedgeCooldownFrames: clock.FramesFor(cfg.Ledge.Cooldown, rate),
		SlideBufferFrames:   clock.FramesFor(cfg.Slide.Buffer, rate),
	}
}
