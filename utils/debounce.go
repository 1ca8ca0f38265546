package utils

import (
	"sync"
	"time"
)

// Debounce wraps fn so that a burst of calls collapses to a single trailing
// invocation after the window elapses; every new call resets the window.
func Debounce(fn func(), window time.Duration) func() {
	var mu sync.Mutex
	var timer *time.Timer

	return func() {
		mu.Lock()
		defer mu.Unlock()

		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(window, fn)
	}
}
