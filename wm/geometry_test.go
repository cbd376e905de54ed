package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampToRootLeavesInBoundsRectangleUnchanged(t *testing.T) {
	assert := assert.New(t)
	x, y, w, h, changed := clampToRoot(10, 10, 100, 100, 1920, 1080, 1)

	assert.False(changed)
	assert.Equal(int16(10), x)
	assert.Equal(int16(10), y)
	assert.Equal(uint16(100), w)
	assert.Equal(uint16(100), h)
}

func TestClampToRootShrinksOversizedRectangle(t *testing.T) {
	assert := assert.New(t)
	x, y, w, h, changed := clampToRoot(0, 0, 3000, 2000, 1920, 1080, 1)

	assert.True(changed)
	assert.Equal(uint16(1918), w)
	assert.Equal(uint16(1078), h)
	assert.Equal(int16(0), x)
	assert.Equal(int16(0), y)
}

func TestClampToRootPullsOffscreenRectangleBackOnscreen(t *testing.T) {
	assert := assert.New(t)
	// A window whose origin is still inside the old, larger root, but
	// whose bottom-right corner now falls past the shrunk root.
	x, y, w, h, changed := clampToRoot(1800, 1000, 200, 150, 1920, 1080, 1)

	assert.True(changed)
	assert.Equal(uint16(200), w)
	assert.Equal(uint16(150), h)
	assert.LessOrEqual(int(x)+int(w)+2, 1920)
	assert.LessOrEqual(int(y)+int(h)+2, 1080)
}

func TestClampToRootNeverProducesNegativeOrigin(t *testing.T) {
	assert := assert.New(t)
	x, y, _, _, changed := clampToRoot(-50, -50, 100, 100, 1920, 1080, 1)

	assert.True(changed)
	assert.Equal(int16(0), x)
	assert.Equal(int16(0), y)
}

func TestSnapDownRoundsToGrid(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint16(100), snapDown(107, 0, 10))
	assert.Equal(uint16(100), snapDown(100, 0, 10))
	assert.Equal(uint16(105), snapDown(108, 5, 10))
}

func TestSnapDownIsIdentityWithZeroIncrement(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint16(107), snapDown(107, 0, 0))
}
