package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResizeStepDefaultsToOne(t *testing.T) {
	assert := assert.New(t)
	c := &Client{Hints: SizeHints{WidthInc: 1, HeightInc: 1}}

	assert.Equal(uint16(1), c.ResizeStepX())
	assert.Equal(uint16(1), c.ResizeStepY())
}

func TestResizeStepUsesHintIncrementWhenGreaterThanOne(t *testing.T) {
	assert := assert.New(t)
	c := &Client{Hints: SizeHints{WidthInc: 10, HeightInc: 15}}

	assert.Equal(uint16(10), c.ResizeStepX())
	assert.Equal(uint16(15), c.ResizeStepY())
}

func TestMaxedVertMaxedMutualExclusionInvariant(t *testing.T) {
	assert := assert.New(t)
	c := &Client{}

	c.Maxed = true
	assert.False(c.VertMaxed)

	c.Maxed = false
	c.VertMaxed = true
	assert.False(c.Maxed)
}
