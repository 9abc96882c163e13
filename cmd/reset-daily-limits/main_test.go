package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	t.Parallel()

	newValue, oldValue, err := parseArgs("30", "")
	require.NoError(t, err)
	assert.Equal(t, 30, newValue)
	assert.Nil(t, oldValue)

	newValue, oldValue, err = parseArgs("30", "20")
	require.NoError(t, err)
	assert.Equal(t, 30, newValue)
	require.NotNil(t, oldValue)
	assert.Equal(t, 20, *oldValue)

	_, _, err = parseArgs("很多", "")
	assert.Error(t, err)
	_, _, err = parseArgs("30", "x")
	assert.Error(t, err)
}
