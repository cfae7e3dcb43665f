package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupDefaults(t *testing.T) {
	Setup()
	assert.Equal(t, 6, Settings.Search.Depth)
	assert.True(t, Settings.Search.UseNullMove)
	assert.True(t, Settings.Eval.UseMobility)
}

func TestString(t *testing.T) {
	Setup()
	s := Settings.String()
	assert.Contains(t, s, "Search")
	assert.Contains(t, s, "Eval")
}
