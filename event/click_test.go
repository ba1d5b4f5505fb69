package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewClick(t *testing.T) {
	policy := DefaultClickPolicy()
	t0 := time.Unix(1000, 0)
	origin := Point{X: 10, Y: 10}

	tests := []struct {
		name     string
		previous *Click
		pos      Point
		at       time.Time
		want     ClickKind
	}{
		{
			name: "first press is single",
			pos:  origin,
			at:   t0,
			want: ClickSingle,
		},
		{
			name:     "quick second press is double",
			previous: &Click{Position: origin, At: t0, Kind: ClickSingle},
			pos:      origin,
			at:       t0.Add(100 * time.Millisecond),
			want:     ClickDouble,
		},
		{
			name:     "quick third press is triple",
			previous: &Click{Position: origin, At: t0, Kind: ClickDouble},
			pos:      Point{X: 12, Y: 11},
			at:       t0.Add(200 * time.Millisecond),
			want:     ClickTriple,
		},
		{
			name:     "fourth press wraps to single",
			previous: &Click{Position: origin, At: t0, Kind: ClickTriple},
			pos:      origin,
			at:       t0.Add(100 * time.Millisecond),
			want:     ClickSingle,
		},
		{
			name:     "slow press is single",
			previous: &Click{Position: origin, At: t0, Kind: ClickSingle},
			pos:      origin,
			at:       t0.Add(time.Second),
			want:     ClickSingle,
		},
		{
			name:     "distant press is single",
			previous: &Click{Position: origin, At: t0, Kind: ClickSingle},
			pos:      Point{X: 40, Y: 10},
			at:       t0.Add(50 * time.Millisecond),
			want:     ClickSingle,
		},
		{
			name:     "press before previous is single",
			previous: &Click{Position: origin, At: t0, Kind: ClickSingle},
			pos:      origin,
			at:       t0.Add(-time.Millisecond),
			want:     ClickSingle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewClick(tt.pos, tt.at, tt.previous, policy)
			assert.Equal(t, tt.want, got.Kind)
			assert.Equal(t, tt.pos, got.Position)
			assert.Equal(t, tt.at, got.At)
		})
	}
}

func TestPlatformModifiers(t *testing.T) {
	assert.True(t, ApplePlatform.IsJump(ModAlt))
	assert.False(t, ApplePlatform.IsJump(ModCtrl))
	assert.True(t, ApplePlatform.IsCommand(ModSuper|ModShift))
	assert.True(t, DefaultPlatform.IsJump(ModCtrl|ModShift))
	assert.False(t, DefaultPlatform.IsJump(ModAlt))
	assert.True(t, DefaultPlatform.IsCommand(ModCtrl))
}

func TestParseKeyAndModifiers(t *testing.T) {
	assert.Equal(t, KeyEnter, ParseKey("Return"))
	assert.Equal(t, KeyBackspace, ParseKey("backspace"))
	assert.Equal(t, KeyUnknown, ParseKey("F13"))
	assert.Equal(t, ModCtrl|ModShift, ParseModifiers("ctrl+Shift"))
	assert.Equal(t, ModSuper, ParseModifiers("cmd"))
	assert.Equal(t, Modifiers(0), ParseModifiers(""))
}

func TestBoundsShrink(t *testing.T) {
	b := Bounds{X: 10, Y: 20, Width: 100, Height: 30}
	inner := b.Shrink(Padding{Top: 5, Right: 10, Bottom: 5, Left: 10})
	assert.Equal(t, Bounds{X: 20, Y: 25, Width: 80, Height: 20}, inner)
	assert.True(t, b.Contains(Point{X: 10, Y: 20}))
	assert.False(t, b.Contains(Point{X: 110, Y: 20}))
}
