package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsDiff(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint16(5), absDiff(10, 5))
	assert.Equal(uint16(5), absDiff(5, 10))
	assert.Equal(uint16(0), absDiff(7, 7))
}
