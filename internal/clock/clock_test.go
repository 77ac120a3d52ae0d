package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		h, m         int
		wantH, wantM int
	}{
		{"already canonical", 7, 48, 7, 48},
		{"borrow from hours", 3, -15, 2, 45},
		{"carry into hours", 0, 468, 7, 48},
		{"exactly sixty", 1, 60, 2, 0},
		{"negative hour", -1, 0, -1, 0},
		{"negative minutes without hours", 0, -30, 0, -30},
		{"mixed signs collapse negative", -2, 30, -1, -30},
		{"zero", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := Normalize(tt.h, tt.m)
			assert.Equal(t, tt.wantH, h, "hour")
			assert.Equal(t, tt.wantM, m, "minute")
		})
	}
}

func TestNormalizeIsConsistentUnderReexpression(t *testing.T) {
	for h := 0; h < 30; h += 7 {
		for m := 0; m < 60; m += 13 {
			wantH, wantM := Normalize(h, m)
			for k := -3; k <= 3; k++ {
				gotH, gotM := Normalize(h+k, m-60*k)
				assert.Equal(t, wantH, gotH, "h=%d m=%d k=%d", h, m, k)
				assert.Equal(t, wantM, gotM, "h=%d m=%d k=%d", h, m, k)
			}
		}
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		a, b Clock
		want Clock
	}{
		{New(14, 0), New(9, 0), New(5, 0)},
		{New(9, 15), New(8, 30), New(0, 45)},
		{New(2, 0), New(3, 0), Clock{Hour: -1}},
		{New(1, 0), New(1, 30), Clock{Minute: -30}},
		{New(1, 15), New(3, 30), Clock{Hour: -2, Minute: -15}},
	}

	for _, tt := range tests {
		t.Run(tt.a.String()+"-"+tt.b.String(), func(t *testing.T) {
			got := tt.a.Sub(tt.b)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, got.Sub(Clock{}), "subtracting zero is a no-op")
		})
	}
}

func TestSubSelfIsZero(t *testing.T) {
	for _, c := range []Clock{New(0, 0), New(7, 48), New(23, 59), New(39, 0)} {
		assert.True(t, c.Sub(c).IsZero(), c.String())
	}
}

func TestDiv(t *testing.T) {
	weekly, err := Parse("39:00")
	require.NoError(t, err)
	daily, err := Parse("07:48")
	require.NoError(t, err)

	assert.Equal(t, daily, weekly.Div(5))
	assert.Equal(t, New(8, 0), New(40, 0).Div(5))
	// 38:30 / 5 = 462 minutes
	assert.Equal(t, New(7, 42), New(38, 30).Div(5))
	assert.Panics(t, func() { New(1, 0).Div(0) })
}

func TestAbsAndString(t *testing.T) {
	neg := New(2, 0).Sub(New(5, 30))
	assert.True(t, neg.Negative())
	assert.Equal(t, "-03:30", neg.String())
	assert.Equal(t, New(3, 30), neg.Abs())
	assert.Equal(t, "03:30", neg.Abs().String())
	assert.Equal(t, "39:00", New(39, 0).String())
}

func TestDurationConversions(t *testing.T) {
	c := New(7, 48)
	assert.Equal(t, 7*time.Hour+48*time.Minute, c.Duration())
	assert.Equal(t, 468, c.Minutes())
	assert.Equal(t, c, FromDuration(c.Duration()+59*time.Second))
	assert.Equal(t, New(0, -30), FromDuration(-30*time.Minute))
}

func TestOn(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	day := time.Date(2024, 3, 12, 17, 42, 13, 0, loc)

	got := New(8, 15).On(day)
	assert.Equal(t, time.Date(2024, 3, 12, 8, 15, 0, 0, loc), got)
}
