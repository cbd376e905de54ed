package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDefaults(t *testing.T) {
	assert := assert.New(t)
	cfg := Parse(nil)

	assert.True(cfg.Borders)
	assert.Equal(defaultTerminal, cfg.Terminal)
	assert.Equal(defaultFocusColor, cfg.FocusColor)
	assert.Equal(defaultUnfocusColor, cfg.UnfocusColor)
	assert.Equal(defaultFixedColor, cfg.FixedColor)
}

func TestParseFlags(t *testing.T) {
	assert := assert.New(t)
	cfg := Parse([]string{"-b", "-t", "urxvt", "-f", "red", "-u", "grey", "-x", "green"})

	assert.False(cfg.Borders)
	assert.Equal("urxvt", cfg.Terminal)
	assert.Equal("red", cfg.FocusColor)
	assert.Equal("grey", cfg.UnfocusColor)
	assert.Equal("green", cfg.FixedColor)
}
