package registry

import "testing"

func TestFrictionOfKnownMaterials(t *testing.T) {
	if c := FrictionOf("ice"); c != 0.02 {
		t.Errorf("Expected ice friction 0.02, got %v", c)
	}
	if c := FrictionOf("stone"); c != 0.7 {
		t.Errorf("Expected stone friction 0.7, got %v", c)
	}
}

func TestFrictionOfUnknownMaterialUsesDefault(t *testing.T) {
	if c := FrictionOf("obsidianite"); c != DefaultFriction {
		t.Errorf("Expected default friction %v, got %v", DefaultFriction, c)
	}
}

func TestRegisterMaterialOverrides(t *testing.T) {
	RegisterMaterial("test_material", 0.33)
	if c := FrictionOf("test_material"); c != 0.33 {
		t.Errorf("Expected registered friction 0.33, got %v", c)
	}
}

func TestFluidOfClassifiesBlocks(t *testing.T) {
	cases := []struct {
		block string
		kind  Fluid
	}{
		{"water", FluidWater},
		{"flowing_water", FluidWater},
		{"lava", FluidLava},
		{"flowing_lava", FluidLava},
		{"stone", FluidNone},
		{"air", FluidNone},
		{"", FluidNone},
	}
	for _, c := range cases {
		if got := FluidOf(c.block); got != c.kind {
			t.Errorf("Expected %q to classify as %v, got %v", c.block, c.kind, got)
		}
	}
}

func TestRegisterFluid(t *testing.T) {
	RegisterFluid("test_acid", FluidLava)
	if got := FluidOf("test_acid"); got != FluidLava {
		t.Errorf("Expected registered fluid kind, got %v", got)
	}
}
