package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGetValue(t *testing.T) {
	c := Get()
	c.Clear()

	c.Set("key", "value")

	got, found := c.GetValue("key")
	require.True(t, found)
	assert.Equal(t, "value", got)
	assert.Equal(t, 1, c.Size())
}

func TestExpiredItemIsNotReturned(t *testing.T) {
	c := Get()
	c.Clear()

	c.Set("key", "value", time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	_, found := c.GetValue("key")
	assert.False(t, found)
}

func TestDeleteAndClear(t *testing.T) {
	c := Get()
	c.Clear()

	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	_, found := c.GetValue("a")
	assert.False(t, found)
	assert.Equal(t, 1, c.Size())

	c.Clear()
	assert.Equal(t, 0, c.Size())
}
