package timer

import (
	"errors"
	"time"
)

// ErrRunning возвращается при попытке изменить длительность работающего
// таймера
var ErrRunning = errors.New("timer is running")

// State - снимок таймера для отображения
type State struct {
	ElapsedMs       int64   `json:"elapsed_ms"`
	RemainingMs     int64   `json:"remaining_ms"`
	TotalMs         int64   `json:"total_ms"`
	IsRunning       bool    `json:"is_running"`
	Alert           bool    `json:"alert"`
	ProgressPercent float64 `json:"progress_percent"`
}

// Countdown - конечный автомат обратного отсчета времени экспозиции:
// Idle -> Running -> Paused -> Running -> Idle (reset). Не защищен от
// конкурентного доступа, синхронизацию обеспечивает владелец.
type Countdown struct {
	now       func() time.Time
	startTime time.Time
	elapsed   time.Duration
	running   bool
	total     time.Duration
	alerted   bool
}

// New создает таймер в состоянии Idle. now подменяется в тестах.
func New(total time.Duration, now func() time.Time) *Countdown {
	if now == nil {
		now = time.Now
	}
	return &Countdown{now: now, total: total}
}

// Start запускает отсчет, сохраняя уже накопленное время: возобновление
// после паузы пересчитывает startTime = now - elapsed
func (c *Countdown) Start() {
	if c.running {
		return
	}
	c.startTime = c.now().Add(-c.elapsed)
	c.running = true
}

// Pause замораживает накопленное время
func (c *Countdown) Pause() {
	if !c.running {
		return
	}
	c.elapsed = c.now().Sub(c.startTime)
	c.running = false
}

// Reset возвращает таймер в Idle и снимает условие тревоги
func (c *Countdown) Reset() {
	c.startTime = time.Time{}
	c.elapsed = 0
	c.running = false
	c.alerted = false
}

// SetDuration меняет общую длительность. Разрешено только когда таймер
// не запущен.
func (c *Countdown) SetDuration(total time.Duration) error {
	if c.running {
		return ErrRunning
	}
	c.total = total
	return nil
}

// Elapsed возвращает накопленное время экспозиции
func (c *Countdown) Elapsed() time.Duration {
	if c.running {
		return c.now().Sub(c.startTime)
	}
	return c.elapsed
}

// Snapshot возвращает текущее состояние. Когда остаток доходит до нуля
// при работающем таймере, условие тревоги защелкивается и держится до
// сброса, пауза его не снимает.
func (c *Countdown) Snapshot() State {
	elapsed := c.Elapsed()

	remaining := c.total - elapsed
	if remaining < 0 {
		remaining = 0
	}
	if c.running && remaining == 0 {
		c.alerted = true
	}

	progress := 0.0
	if c.total > 0 {
		progress = float64(elapsed) / float64(c.total) * 100
		if progress > 100 {
			progress = 100
		}
		if progress < 0 {
			progress = 0
		}
	}

	return State{
		ElapsedMs:       elapsed.Milliseconds(),
		RemainingMs:     remaining.Milliseconds(),
		TotalMs:         c.total.Milliseconds(),
		IsRunning:       c.running,
		Alert:           c.alerted,
		ProgressPercent: progress,
	}
}
