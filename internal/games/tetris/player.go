package tetris

// spawn promotes the queued letter to the active piece, centred on row 0,
// and refills the queue. A piece that collides on arrival ends the game;
// the board is left untouched for the final display.
func (e *Engine) spawn() {
	m := mustCreatePiece(e.next)
	e.player = &Piece{
		Matrix: m,
		Pos:    Point{X: e.board.Width()/2 - m.Width()/2, Y: 0},
	}
	e.next = e.drawPiece()

	if e.board.Collides(e.player) {
		e.state = StateGameOver
		e.emit(EventGameOver, e.score)
	}
}

// drawPiece picks the next letter uniformly from the bag.
func (e *Engine) drawPiece() PieceType {
	return PieceType(Pieces[e.rng.Intn(len(Pieces))])
}

// move shifts the active piece horizontally. Returns false, leaving the
// piece where it was, if the target position collides.
func (e *Engine) move(dir int) bool {
	e.player.Pos.X += dir
	if e.board.Collides(e.player) {
		e.player.Pos.X -= dir
		return false
	}
	return true
}

// drop moves the active piece one row down. On collision the piece stays,
// locks into the board and the clear pipeline starts. Either way the
// gravity counter restarts, so soft drop and gravity behave the same.
func (e *Engine) drop() {
	e.player.Pos.Y++
	if e.board.Collides(e.player) {
		e.player.Pos.Y--
		e.lock()
	}
	e.dropCounter = 0
}

// rotate turns the active piece and searches horizontal kicks of
// +1, -2, +3, -4, ... (cumulative) until it fits. When the next kick would
// exceed the shape width the rotation is undone and false is returned.
func (e *Engine) rotate(dir int) bool {
	x := e.player.Pos.X
	offset := 1
	e.player.Matrix.Rotate(dir)

	for e.board.Collides(e.player) {
		e.player.Pos.X += offset
		if offset > 0 {
			offset = -(offset + 1)
		} else {
			offset = -(offset - 1)
		}
		if offset > e.player.Matrix.Width() {
			e.player.Matrix.Rotate(-dir)
			e.player.Pos.X = x
			return false
		}
	}
	return true
}
