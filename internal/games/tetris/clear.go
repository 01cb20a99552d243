package tetris

import "time"

// clearAnimation tracks rows that are full but not yet removed.
// The rows stay occupied on the board until the animation finishes.
type clearAnimation struct {
	active bool
	rows   []int // ascending
	start  time.Duration
}

// blinkOn reports whether the flash overlay is visible at clock now.
// The phase flips every interval, starting visible.
func (c clearAnimation) blinkOn(now, interval time.Duration) bool {
	if interval <= 0 {
		return true
	}
	return ((now-c.start)/interval)%2 == 0
}

// ClearScore returns the points for clearing n rows at once. The multiplier
// starts at 1 and doubles after every credited row: 1, 2, 3 and 4 rows with
// linePoints=10 score 10, 30, 70 and 150.
func ClearScore(n, linePoints int) int {
	total := 0
	multiplier := 1
	for range n {
		total += multiplier * linePoints
		multiplier *= 2
	}
	return total
}

// lock merges the active piece and sweeps the board. Without full rows the
// next piece spawns at once, otherwise the clear animation starts and the
// spawn waits for updateClear.
func (e *Engine) lock() {
	e.board.Merge(e.player)
	e.emit(EventLock, 0)

	rows := e.board.FullRows()
	if len(rows) == 0 {
		e.spawn()
		return
	}

	e.clear = clearAnimation{
		active: true,
		rows:   rows,
		start:  e.clock,
	}
}

// updateClear finishes the animation once it has run for the configured
// duration: rows are removed, scored, and the next piece spawns.
func (e *Engine) updateClear() {
	if e.clock-e.clear.start < e.opts.ClearDuration {
		return
	}

	rows := e.clear.rows
	e.board.RemoveRows(rows)
	e.score += ClearScore(len(rows), e.opts.LinePoints)
	e.emit(EventLines, len(rows))

	e.clear = clearAnimation{}
	e.dropCounter = 0
	e.spawn()
}
