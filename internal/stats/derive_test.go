package stats

import (
	"testing"

	"github.com/lawnchairsociety/amberesque/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAttributes(t *testing.T) {
	aspects := rules.AspectRatings{Form: -5, Flesh: 0, Mind: 5, Spirit: 30}
	functions := rules.FunctionRatings{Resist: 10, Adapt: -20, Perceive: 0, Force: 30}

	attrs := DeriveAttributes(aspects, functions)
	require.Len(t, attrs.Values, 16)
	require.Len(t, attrs.Pools, 16)

	assert.Equal(t, 15, attrs.Values[rules.Willpower])
	assert.Equal(t, "2d12 + d4", attrs.Pools[rules.Willpower].Notation)

	// Unclamped sum, clamped pool.
	assert.Equal(t, 60, attrs.Values[rules.Presence])
	assert.Equal(t, -25, attrs.Values[rules.Agility])
	assert.Equal(t, "d8", attrs.Pools[rules.Agility].Notation)

	for _, info := range rules.Attributes {
		want := functions.Get(info.Function) + aspects.Get(info.Aspect)
		assert.Equal(t, want, attrs.Values[info.ID], string(info.ID))
		assert.Equal(t, Resolve(want), attrs.Pools[info.ID], string(info.ID))
	}
}

func TestDeriveAttributesBeyondScale(t *testing.T) {
	// Off-scale ratings still derive; the pool saturates.
	attrs := DeriveAttributes(
		rules.AspectRatings{Form: 50, Flesh: 50, Mind: 50, Spirit: 50},
		rules.FunctionRatings{Resist: 50, Adapt: 50, Perceive: 50, Force: 50},
	)
	assert.Equal(t, 100, attrs.Values[rules.Toughness])
	assert.Equal(t, "4d12", attrs.Pools[rules.Toughness].Notation)
}

func TestSkillCap(t *testing.T) {
	tests := []struct {
		strength int
		want     int
	}{
		{4, 1},
		{12, 3},
		{16, 4},
		{20, 4},
		{24, 4},
		{48, 4},
		{0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SkillCap(tt.strength), "strength %d", tt.strength)
	}
}

func TestSkillCapMonotonic(t *testing.T) {
	prev := SkillCap(0)
	for s := 1; s <= 48; s++ {
		got := SkillCap(s)
		assert.GreaterOrEqual(t, got, prev, "strength %d", s)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, MaxSkillCap)
		prev = got
	}
}

func TestSkillMaximum(t *testing.T) {
	assert.Equal(t, 10, SkillMaximum(20))
	assert.Equal(t, 6, SkillMaximum(12))
	assert.Equal(t, 2, SkillMaximum(4))
	assert.Equal(t, 24, SkillMaximum(48))
	assert.Equal(t, 3, SkillMaximum(7))
}

func TestDeriveSkillLimits(t *testing.T) {
	tests := []struct {
		name      string
		aspects   rules.AspectRatings
		functions rules.FunctionRatings
		want      SkillLimits
	}{
		{
			name: "all zero",
			want: SkillLimits{Cap: 4, Maximum: 10, WillpowerStrength: 20, MemoryStrength: 20},
		},
		{
			name:      "halved d4 willpower and memory",
			aspects:   rules.AspectRatings{Mind: -20},
			functions: rules.FunctionRatings{Resist: -20, Perceive: -20},
			want:      SkillLimits{Cap: 1, Maximum: 2, WillpowerStrength: 4, MemoryStrength: 4},
		},
		{
			name:      "single d12",
			aspects:   rules.AspectRatings{Mind: -15},
			functions: rules.FunctionRatings{},
			want:      SkillLimits{Cap: 3, Maximum: 6, WillpowerStrength: 12, MemoryStrength: 12},
		},
		{
			name:      "strong memory",
			aspects:   rules.AspectRatings{Mind: 30},
			functions: rules.FunctionRatings{Perceive: 30},
			want:      SkillLimits{Cap: 4, Maximum: 24, WillpowerStrength: 34, MemoryStrength: 48},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveSkillLimits(tt.aspects, tt.functions))
		})
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{100, 5, 20},
		{4, 5, 0},
		{0, 5, 0},
		{-1, 5, -1},
		{-5, 5, -1},
		{-6, 5, -2},
		{-10, 5, -2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, floorDiv(tt.a, tt.b), "%d / %d", tt.a, tt.b)
	}
}

func TestFunctionDice(t *testing.T) {
	attrs := DeriveAttributes(rules.AspectRatings{}, rules.FunctionRatings{Force: 30})
	counts := FunctionDice(attrs.Pools)

	assert.Equal(t, map[rules.Function]int{
		rules.Resist:   8,
		rules.Adapt:    8,
		rules.Perceive: 8,
		rules.Force:    12, // 30 -> 2d12 + d10 on every Force attribute
	}, counts)
	assert.Equal(t, 12, BaseSurge(attrs.Pools))
}

func TestDeriveSurge(t *testing.T) {
	zero := DeriveAttributes(rules.AspectRatings{}, rules.FunctionRatings{}).Pools
	weak := DeriveAttributes(
		rules.AspectRatings{Form: -20, Flesh: -20, Mind: -20, Spirit: -20},
		rules.FunctionRatings{Resist: -20, Adapt: -20, Perceive: -20, Force: -20},
	).Pools

	tests := []struct {
		name  string
		pools map[rules.Attribute]Pool
		stuff int
		want  int
	}{
		{"zero character, 100 good stuff", zero, 100, 28},
		{"zero character, no stuff", zero, 0, 8},
		{"partial step of good stuff", zero, 4, 8},
		{"partial step of bad stuff", zero, -3, 7},
		{"floored at one", zero, -100, MinSurge},
		{"weak character", weak, 0, 4},
		{"weak character, bad stuff", weak, -15, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveSurge(tt.pools, tt.stuff))
		})
	}
}

func TestDeriveSurgeNeverBelowOne(t *testing.T) {
	pools := DeriveAttributes(rules.AspectRatings{}, rules.FunctionRatings{}).Pools
	for stuff := -500; stuff <= 50; stuff += 7 {
		assert.GreaterOrEqual(t, DeriveSurge(pools, stuff), MinSurge, "stuff %d", stuff)
	}
}
