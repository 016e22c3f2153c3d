package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display DisplayConfig   `json:"display"`
	Physics PhysicsSettings `json:"physics"`
	Actor   ActorConfig     `json:"actor"`
	Ground  MotionConfig    `json:"ground"`
	Sprint  MotionConfig    `json:"sprint"`
	Air     MotionConfig    `json:"air"`
	Jump    JumpConfig      `json:"jump"`
	Wall    WallConfig      `json:"wall"`
	Ledge   LedgeConfig     `json:"ledge"`
	Slide   SlideConfig     `json:"slide"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	TickRate     int `json:"tickRate"`
}

type PhysicsSettings struct {
	Gravity     float64 `json:"gravity"`
	StepLength  float64 `json:"stepLength"`  // sweep sample spacing (world units)
	SensorInset float64 `json:"sensorInset"` // shrink of edge sensors (world units)
}

type ActorConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// MotionConfig is one horizontal acceleration table
type MotionConfig struct {
	MaxSpeed     float64 `json:"maxSpeed"`
	Acceleration float64 `json:"acceleration"`
	Deceleration float64 `json:"deceleration"`
	Turn         float64 `json:"turn"`
}

type JumpConfig struct {
	Speed                float64 `json:"speed"`
	HeldGravityReduction float64 `json:"heldGravityReduction"`
	CoyoteTime           float64 `json:"coyoteTime"` // seconds
	JumpBuffer           float64 `json:"jumpBuffer"` // seconds
}

type WallConfig struct {
	SlideGravity   float64 `json:"slideGravity"`
	RiseGravity    float64 `json:"riseGravity"`
	JumpMultiplier float64 `json:"jumpMultiplier"`
	JumpPush       float64 `json:"jumpPush"`
	SprintPush     float64 `json:"sprintPush"`
	Boost          float64 `json:"boost"`     // crouch-buffered wall hit from a fall
	JumpBoost      float64 `json:"jumpBoost"` // crouch-buffered wall hit from a jump
}

type LedgeConfig struct {
	ProbeMargin    float64 `json:"probeMargin"`
	ProbeSize      float64 `json:"probeSize"`
	Cooldown       float64 `json:"cooldown"` // seconds
	JumpSpeed      float64 `json:"jumpSpeed"`
	SprintBonus    float64 `json:"sprintBonus"`
	JumpMultiplier float64 `json:"jumpMultiplier"`
	JumpPush       float64 `json:"jumpPush"`
}

type SlideConfig struct {
	Drag         float64 `json:"drag"`
	Buffer       float64 `json:"buffer"` // seconds
	LandingBoost float64 `json:"landingBoost"`
	CeilingBoost float64 `json:"ceilingBoost"`
}

// DefaultPhysics returns the tuning the game ships with
func DefaultPhysics() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{ScreenWidth: 640, ScreenHeight: 384, Scale: 2, TickRate: 120},
		Physics: PhysicsSettings{Gravity: 1024, StepLength: 32, SensorInset: 4},
		Actor:   ActorConfig{Width: 20, Height: 44},
		Ground:  MotionConfig{MaxSpeed: 256, Acceleration: 1536, Deceleration: 2048, Turn: 3072},
		Sprint:  MotionConfig{MaxSpeed: 448, Acceleration: 1024, Deceleration: 512, Turn: 2048},
		Air:     MotionConfig{MaxSpeed: 256, Acceleration: 1024, Deceleration: 512, Turn: 1536},
		Jump:    JumpConfig{Speed: 512, HeldGravityReduction: 256, CoyoteTime: 0.1, JumpBuffer: 0.1},
		Wall: WallConfig{
			SlideGravity:   512,
			RiseGravity:    1536,
			JumpMultiplier: 1.5,
			JumpPush:       512,
			SprintPush:     512,
			Boost:          0.5,
			JumpBoost:      0.75,
		},
		Ledge: LedgeConfig{
			ProbeMargin:    9,
			ProbeSize:      8,
			Cooldown:       0.2,
			JumpSpeed:      256,
			SprintBonus:    256,
			JumpMultiplier: 1.5,
			JumpPush:       128,
		},
		Slide: SlideConfig{Drag: 384, Buffer: 0.15, LandingBoost: 0.5, CeilingBoost: 0.25},
	}
}
