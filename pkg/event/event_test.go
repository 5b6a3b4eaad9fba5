package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventInvokeOrder(t *testing.T) {
	var e Event[int]
	var got []int

	e.AddListener(func(v int) { got = append(got, v) })
	e.AddListener(func(v int) { got = append(got, v*10) })
	e.AddListener(nil)

	assert.Equal(t, 2, e.ListenerCount())

	e.Invoke(3)
	assert.Equal(t, []int{3, 30}, got)
}

func TestEventRemoveAllListeners(t *testing.T) {
	var e Event[string]
	calls := 0
	e.AddListener(func(string) { calls++ })
	e.RemoveAllListeners()

	e.Invoke("ignored")
	assert.Zero(t, calls)
	assert.Zero(t, e.ListenerCount())
}
