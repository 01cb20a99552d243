package tetris

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Steps        uint64
	State        string
	Score        int
	Next         PieceType
	PieceX       int
	PieceY       int
	Clearing     bool
	ClearRows    int // Rows waiting to be removed
	Filled       int // Locked cells on the board
	DropInterval int64
	Paused       bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{}
	}

	e := g.engine
	snap := Snapshot{
		Steps:        g.steps,
		State:        e.State().String(),
		Score:        e.Score(),
		Next:         e.Next(),
		Clearing:     e.Clearing(),
		ClearRows:    len(e.clear.rows),
		DropInterval: e.DropInterval().Milliseconds(),
		Paused:       g.tooSmall,
	}
	if e.player != nil {
		snap.PieceX = e.player.Pos.X
		snap.PieceY = e.player.Pos.Y
	}
	e.board.cells.each(func(_, _ int, _ Cell) {
		snap.Filled++
	})
	return snap
}
