package system

import (
	"math"

	"github.com/younwookim/ledgeline/internal/infrastructure/config"
)

// approach moves current toward target: turn rate when the signs oppose,
// acceleration when speeding up, deceleration otherwise. The result never
// overshoots target.
//
// With momentum set, speed above a same-signed target is kept.
func approach(current, target float64, m config.MotionConfig, dt float64, momentum bool) float64 {
	if current == target {
		return current
	}
	sameSign := sign(current) == sign(target)
	if momentum && sameSign && math.Abs(target) < math.Abs(current) {
		return current
	}

	var rate float64
	switch {
	case current != 0 && target != 0 && !sameSign:
		rate = m.Turn
	case math.Abs(target) > math.Abs(current):
		rate = m.Acceleration
	default:
		rate = m.Deceleration
	}

	diff := target - current
	return current + sign(diff)*math.Min(math.Abs(diff), rate*dt)
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
