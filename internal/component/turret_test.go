package component

import (
	"image/color"
	"math"
	"testing"

	"go-artillery/pkg/physics"

	"pgregory.net/rapid"
)

func newTestCannon() *Cannon {
	return NewCannon(CannonConfig{
		Pos:         physics.V(30, 550),
		MinPower:    10,
		MaxPower:    50,
		Color:       color.RGBA{255, 220, 255, 255},
		ShellRadius: 20,
		Margin:      30,
		ArenaWidth:  800,
		Owner:       OwnerPlayer,
	})
}

func TestCannonFireScenario(t *testing.T) {
	c := newTestCannon()
	c.Angle = 0
	c.Power = 20
	c.Active = true

	shell := c.Fire(color.RGBA{})
	if shell.Pos != physics.V(30, 550) {
		t.Errorf("expected shell at (30,550), got %v", shell.Pos)
	}
	if shell.Vel != physics.V(20, 0) {
		t.Errorf("expected velocity (20,0), got %v", shell.Vel)
	}
	if c.Power != c.MinPower || c.Active {
		t.Errorf("expected reset to min power and inactive, got power=%f active=%v", c.Power, c.Active)
	}
	if !shell.Owner.IsPlayer() {
		t.Error("shell should belong to the player")
	}
}

func TestCannonFireTruncatesVelocity(t *testing.T) {
	c := newTestCannon()
	c.Power = 10
	c.Angle = -math.Pi / 4 // 7.07 both ways

	shell := c.Fire(color.RGBA{})
	if shell.Vel != physics.V(7, -7) {
		t.Errorf("expected (7,-7), got %v", shell.Vel)
	}
}

func TestCannonFireWithoutChargeIsMinPower(t *testing.T) {
	c := newTestCannon()
	shell := c.Fire(color.RGBA{})
	if shell.Vel != physics.V(10, 0) {
		t.Errorf("expected min power shot (10,0), got %v", shell.Vel)
	}
}

func TestCannonGainOnlyWhileActive(t *testing.T) {
	c := newTestCannon()
	c.Gain(2)
	if c.Power != 10 {
		t.Errorf("inactive cannon should not charge, got %f", c.Power)
	}
	c.Activate()
	c.Gain(2)
	if c.Power != 12 {
		t.Errorf("expected 12, got %f", c.Power)
	}
}

func TestCannonPowerStaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := newTestCannon()
		ops := rapid.SliceOf(rapid.IntRange(0, 2)).Draw(t, "ops")
		for _, op := range ops {
			switch op {
			case 0:
				c.Activate()
			case 1:
				c.Gain(float64(rapid.IntRange(1, 7).Draw(t, "inc")))
			case 2:
				c.Fire(color.RGBA{})
				if c.Power != c.MinPower {
					t.Fatalf("fire left power at %f", c.Power)
				}
			}
			if c.Power < c.MinPower || c.Power > c.MaxPower {
				t.Fatalf("power %f outside [%f, %f]", c.Power, c.MinPower, c.MaxPower)
			}
		}
	})
}

func TestCannonSetAim(t *testing.T) {
	c := newTestCannon()
	c.SetAim(physics.V(30, 450))
	if math.Abs(c.Angle+math.Pi/2) > 1e-9 {
		t.Errorf("expected straight up (-pi/2), got %f", c.Angle)
	}
	c.SetAim(physics.V(130, 550))
	if c.Angle != 0 {
		t.Errorf("expected 0, got %f", c.Angle)
	}
}

func TestCannonMoveByClamps(t *testing.T) {
	c := newTestCannon()
	c.MoveBy(-10)
	if c.Pos.X != 30 {
		t.Errorf("expected left clamp at 30, got %f", c.Pos.X)
	}
	c.MoveBy(10)
	if c.Pos.X != 40 {
		t.Errorf("expected 40, got %f", c.Pos.X)
	}
	c.MoveBy(10000)
	if c.Pos.X != 770 {
		t.Errorf("expected right clamp at 770, got %f", c.Pos.X)
	}
	if c.Pos.Y != 550 {
		t.Errorf("moving must not change y, got %f", c.Pos.Y)
	}
}
