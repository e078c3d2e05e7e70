// Package ratelimit реализует sliding-window лимитер запросов по ключу
// (адрес клиента). Счетчики хранятся в памяти процесса: сброс при рестарте
// допустим, лимитер защищает от всплесков, а не от постоянного DoS.
package ratelimit

import (
	"sync"
	"time"
)

// Clock источник времени (для детерминированных тестов)
type Clock interface {
	Now() time.Time
}

// RealClock системные часы
type RealClock struct{}

// Now возвращает текущее время
func (RealClock) Now() time.Time {
	return time.Now()
}

// Result результат проверки лимита
type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter sliding-window лимитер с ограничением maxRequests за window
type Limiter struct {
	mu          sync.Mutex
	maxRequests int
	window      time.Duration
	clock       Clock
	entries     map[string][]time.Time
}

// New создает лимитер с системными часами
func New(maxRequests int, window time.Duration) *Limiter {
	return NewWithClock(maxRequests, window, RealClock{})
}

// NewWithClock создает лимитер с внешним источником времени
func NewWithClock(maxRequests int, window time.Duration, clock Clock) *Limiter {
	return &Limiter{
		maxRequests: maxRequests,
		window:      window,
		clock:       clock,
		entries:     make(map[string][]time.Time),
	}
}

// Check регистрирует попытку для ключа и сообщает, допущена ли она.
// Отклоненные попытки не занимают место в окне.
func (l *Limiter) Check(key string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	cutoff := now.Add(-l.window)

	kept := l.entries[key][:0]
	for _, ts := range l.entries[key] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= l.maxRequests {
		l.entries[key] = kept
		retryAfter := l.window - now.Sub(kept[0])
		if retryAfter < 0 {
			retryAfter = 0
		}
		return Result{Allowed: false, Remaining: 0, RetryAfter: retryAfter}
	}

	l.entries[key] = append(kept, now)
	return Result{
		Allowed:   true,
		Remaining: l.maxRequests - len(l.entries[key]),
	}
}

// Janitor периодически удаляет ключи без актуальных записей до закрытия stopCh
func (l *Limiter) Janitor(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.sweep()
		case <-stopCh:
			return
		}
	}
}

func (l *Limiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.clock.Now().Add(-l.window)
	for key, timestamps := range l.entries {
		kept := timestamps[:0]
		for _, ts := range timestamps {
			if ts.After(cutoff) {
				kept = append(kept, ts)
			}
		}
		if len(kept) == 0 {
			delete(l.entries, key)
		} else {
			l.entries[key] = kept
		}
	}
}
