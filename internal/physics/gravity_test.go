package physics

import (
	"math"
	"testing"

	"voxphys/internal/geom"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestDefaultGravityProfile(t *testing.T) {
	g := DefaultGravity()
	if g.Direction() != (geom.Vector3{Y: -1}) {
		t.Errorf("Expected straight-down direction, got %v", g.Direction())
	}
	if g.Magnitude() != StandardGravity {
		t.Errorf("Expected magnitude %v, got %v", StandardGravity, g.Magnitude())
	}
	if g.TerminalVelocity() != DefaultTerminalVelocity {
		t.Errorf("Expected terminal velocity %v, got %v", DefaultTerminalVelocity, g.TerminalVelocity())
	}
	if g.Multiplier() != 1 {
		t.Errorf("Expected multiplier 1, got %v", g.Multiplier())
	}
}

func TestNewGravityNormalizesDirection(t *testing.T) {
	g, err := NewGravity(geom.Vector3{Y: -5}, 10, 50, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if g.Direction() != (geom.Vector3{Y: -1}) {
		t.Errorf("Expected normalized direction (0,-1,0), got %v", g.Direction())
	}
}

func TestNewGravityRejectsZeroDirection(t *testing.T) {
	if _, err := NewGravity(geom.Zero, 10, 50, 1); err == nil {
		t.Error("Expected error for zero-length direction, got none")
	}
}

func TestNewGravityRejectsBadScalars(t *testing.T) {
	down := geom.Vector3{Y: -1}
	if _, err := NewGravity(down, 0, 50, 1); err == nil {
		t.Error("Expected error for zero magnitude, got none")
	}
	if _, err := NewGravity(down, 10, -1, 1); err == nil {
		t.Error("Expected error for negative terminal velocity, got none")
	}
	if _, err := NewGravity(down, 10, 50, 1.5); err == nil {
		t.Error("Expected error for multiplier above 1, got none")
	}
}

func TestApplyAcceleratesDownward(t *testing.T) {
	g := DefaultGravity()
	v := g.Apply(geom.Zero, 1)
	if !almostEqual(v.Y, -StandardGravity) {
		t.Errorf("Expected velocity y %v after 1s, got %v", -StandardGravity, v.Y)
	}
	if v.X != 0 || v.Z != 0 {
		t.Errorf("Expected horizontal velocity untouched, got %v", v)
	}
}

func TestApplyClampsToTerminalVelocity(t *testing.T) {
	g := DefaultGravity()
	v := g.Apply(geom.Vector3{Y: -78}, 1)
	if v.Y != -DefaultTerminalVelocity {
		t.Errorf("Expected clamp at %v, got %v", -DefaultTerminalVelocity, v.Y)
	}
}

func TestApplyNeverClampsUpwardMotion(t *testing.T) {
	// A launched body may exceed terminal speed upward; only falling is
	// capped.
	g := DefaultGravity()
	v := g.Apply(geom.Vector3{Y: 200}, 0.01)
	if v.Y <= DefaultTerminalVelocity {
		t.Errorf("Expected upward speed to remain above the cap, got %v", v.Y)
	}
}

func TestForMediumScalesFluidGravity(t *testing.T) {
	g := DefaultGravity().ForMedium(true)
	if !almostEqual(g.Magnitude(), StandardGravity*0.4) {
		t.Errorf("Expected fluid magnitude %v, got %v", StandardGravity*0.4, g.Magnitude())
	}
	if !almostEqual(g.TerminalVelocity(), DefaultTerminalVelocity*0.4) {
		t.Errorf("Expected fluid terminal velocity %v, got %v", DefaultTerminalVelocity*0.4, g.TerminalVelocity())
	}
	if !almostEqual(g.Multiplier(), 0.4) {
		t.Errorf("Expected fluid multiplier 0.4, got %v", g.Multiplier())
	}
}

func TestForMediumAirIsIdentity(t *testing.T) {
	g := DefaultGravity()
	if g.ForMedium(false) != g {
		t.Error("Expected air medium to return the profile unchanged")
	}
}

func TestJumpVelocityReachesApex(t *testing.T) {
	// v = sqrt(2*g*h) means v^2/(2*g) recovers the height.
	g := DefaultGravity()
	height := 1.25
	v := g.JumpVelocity(height)
	if recovered := v * v / (2 * g.Magnitude() * g.Multiplier()); !almostEqual(recovered, height) {
		t.Errorf("Expected apex height %v, got %v", height, recovered)
	}
}

func TestFallDamageThreshold(t *testing.T) {
	if d := FallDamage(2); d != 0 {
		t.Errorf("Expected no damage for a 2-unit drop, got %v", d)
	}
	if d := FallDamage(3); d != 0 {
		t.Errorf("Expected no damage at exactly the threshold, got %v", d)
	}
	if d := FallDamage(8); !almostEqual(d, 2.5) {
		t.Errorf("Expected 2.5 damage for an 8-unit drop, got %v", d)
	}
	if d := FallDamage(3.1); !almostEqual(d, 0.05) {
		t.Errorf("Expected 0.05 damage for a 3.1-unit drop, got %v", d)
	}
}
