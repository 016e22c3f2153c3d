package config

import (
	"errors"
	"fmt"
)

// Validate reports tuning values the simulation cannot run with
func (c *PhysicsConfig) Validate() error {
	var errs []error
	if c.Display.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("display.tickRate must be positive, got %d", c.Display.TickRate))
	}
	if c.Physics.StepLength <= 0 {
		errs = append(errs, fmt.Errorf("physics.stepLength must be positive, got %v", c.Physics.StepLength))
	}
	if c.Actor.Width <= 0 || c.Actor.Height <= 0 {
		errs = append(errs, fmt.Errorf("actor size must be positive, got %vx%v", c.Actor.Width, c.Actor.Height))
	}
	if c.Physics.SensorInset < 0 || c.Physics.SensorInset >= c.Actor.Width || c.Physics.SensorInset >= c.Actor.Height {
		errs = append(errs, fmt.Errorf("physics.sensorInset %v does not fit the actor", c.Physics.SensorInset))
	}
	if c.Ledge.ProbeSize <= 0 {
		errs = append(errs, fmt.Errorf("ledge.probeSize must be positive, got %v", c.Ledge.ProbeSize))
	}
	return errors.Join(errs...)
}
