package quantum

import "sync"

// Guard admits one in-flight action per key. A second caller for a held key
// is turned away instead of waiting.
type Guard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewGuard() *Guard {
	return &Guard{held: make(map[string]struct{})}
}

// TryAcquire takes the key and reports whether it was free.
func (that *Guard) TryAcquire(key string) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, busy := that.held[key]; busy {
		return false
	}

	that.held[key] = struct{}{}

	return true
}

func (that *Guard) Release(key string) {
	that.mu.Lock()
	delete(that.held, key)
	that.mu.Unlock()
}
