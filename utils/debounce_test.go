package utils

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDebounceCollapsesBursts(t *testing.T) {
	var calls int32
	debounced := Debounce(func() { atomic.AddInt32(&calls, 1) }, 30*time.Millisecond)

	for i := 0; i < 10; i++ {
		debounced()
	}

	time.Sleep(100 * time.Millisecond)
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDebounceResetsWindow(t *testing.T) {
	var calls int32
	debounced := Debounce(func() { atomic.AddInt32(&calls, 1) }, 50*time.Millisecond)

	// keep re-arming inside the window; nothing may fire yet
	for i := 0; i < 4; i++ {
		debounced()
		time.Sleep(20 * time.Millisecond)
	}
	require.Equal(t, int32(0), atomic.LoadInt32(&calls))

	time.Sleep(100 * time.Millisecond)
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDebounceFiresAgainAfterQuietPeriod(t *testing.T) {
	var calls int32
	debounced := Debounce(func() { atomic.AddInt32(&calls, 1) }, 20*time.Millisecond)

	debounced()
	time.Sleep(60 * time.Millisecond)
	debounced()
	time.Sleep(60 * time.Millisecond)

	require.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
