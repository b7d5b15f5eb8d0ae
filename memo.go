package vnlunar

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// memoKey identifies one evaluation of a memoized function: an integer
// argument (new moon index, day number or year) and a time zone offset.
type memoKey struct {
	n  int
	tz float64
}

func (k memoKey) String() string {
	return strconv.Itoa(k.n) + "@" + strconv.FormatFloat(k.tz, 'g', -1, 64)
}

// memo caches a pure function of (int, tz). Entries are never evicted.
// Concurrent misses on the same key are collapsed into one evaluation.
type memo struct {
	fn func(n int, tz float64) int

	mu     sync.RWMutex
	values map[memoKey]int
	group  singleflight.Group
}

func newMemo(fn func(n int, tz float64) int) *memo {
	return &memo{
		fn:     fn,
		values: make(map[memoKey]int),
	}
}

func (m *memo) lookup(k memoKey) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[k]
	return v, ok
}

// get returns fn(n, tz), computing and storing it on first use.
func (m *memo) get(n int, tz float64) int {
	k := memoKey{n: n, tz: tz}
	if v, ok := m.lookup(k); ok {
		return v
	}
	v, _, _ := m.group.Do(k.String(), func() (any, error) {
		if v, ok := m.lookup(k); ok {
			return v, nil
		}
		v := m.fn(n, tz)
		m.mu.Lock()
		m.values[k] = v
		m.mu.Unlock()
		return v, nil
	})
	return v.(int)
}

// len reports the number of cached entries.
func (m *memo) len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}

// reset drops every cached entry.
func (m *memo) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = make(map[memoKey]int)
}

var (
	newMoonDayMemo      = newMemo(newMoonDay)
	sunLongitudeMemo    = newMemo(sunLongitude)
	lunarMonth11Memo    = newMemo(lunarMonth11)
	leapMonthOffsetMemo = newMemo(leapMonthOffset)
)
