package frame_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/proofline/pkg/frame"
)

func TestQueue(t *testing.T) {
	t.Parallel()

	q := frame.NewQueue()
	var order []string

	q.Request(func() { order = append(order, "a") })
	h := q.Request(func() { order = append(order, "b") })
	q.Request(func() {
		order = append(order, "c")
		q.Request(func() { order = append(order, "next frame") })
	})
	q.Cancel(h)
	q.Cancel(frame.Handle(999))

	assert.Equal(t, 2, q.Pending())
	assert.Equal(t, 2, q.Tick())
	assert.Equal(t, []string{"a", "c"}, order)

	assert.Equal(t, 1, q.Pending())
	assert.Equal(t, 1, q.Tick())
	assert.Equal(t, []string{"a", "c", "next frame"}, order)
	assert.Equal(t, 0, q.Tick())
}

func TestSlotKeepsOnlyLatest(t *testing.T) {
	t.Parallel()

	q := frame.NewQueue()
	slot := frame.NewSlot(q)
	var ran []int

	slot.Schedule(func() { ran = append(ran, 1) })
	slot.Schedule(func() { ran = append(ran, 2) })
	assert.True(t, slot.Pending())
	assert.Equal(t, 1, q.Pending())

	q.Tick()
	assert.Equal(t, []int{2}, ran)
	assert.False(t, slot.Pending())
}

func TestSlotCancel(t *testing.T) {
	t.Parallel()

	q := frame.NewQueue()
	slot := frame.NewSlot(q)
	ran := false

	slot.Schedule(func() { ran = true })
	slot.Cancel()
	slot.Cancel()

	assert.False(t, slot.Pending())
	assert.Equal(t, 0, q.Tick())
	assert.False(t, ran)
}

func TestSlotCanRescheduleFromCallback(t *testing.T) {
	t.Parallel()

	q := frame.NewQueue()
	slot := frame.NewSlot(q)
	count := 0

	var step func()
	step = func() {
		count++
		if count < 3 {
			slot.Schedule(step)
		}
	}
	slot.Schedule(step)

	for q.Pending() > 0 {
		q.Tick()
	}
	assert.Equal(t, 3, count)
}

func TestTimer(t *testing.T) {
	t.Parallel()

	timer := frame.NewTimer(50 * time.Millisecond)
	slot := frame.NewSlot(timer)

	var calls atomic.Int32
	done := make(chan struct{})

	slot.Schedule(func() { calls.Add(100) })
	slot.Schedule(func() {
		calls.Add(1)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		require.FailNow(t, "timer callback did not run")
	}
	assert.Equal(t, int32(1), calls.Load())

	cancelled := timer.Request(func() { calls.Add(10) })
	timer.Cancel(cancelled)
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}
