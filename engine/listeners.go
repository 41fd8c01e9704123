package engine

// Listeners fans events out to several listeners in order. The renderer
// should come first so sounds never precede the frame they belong to.
type Listeners []Listener

func (ls Listeners) ViewChanged(g *Game) {
	for _, l := range ls {
		l.ViewChanged(g)
	}
}

func (ls Listeners) LinesCleared(g *Game, count int, action Action, perfect bool) {
	for _, l := range ls {
		l.LinesCleared(g, count, action, perfect)
	}
}

func (ls Listeners) PieceLocked(g *Game) {
	for _, l := range ls {
		l.PieceLocked(g)
	}
}

func (ls Listeners) LevelChanged(g *Game, level int) {
	for _, l := range ls {
		l.LevelChanged(g, level)
	}
}

func (ls Listeners) GameOver(g *Game) {
	for _, l := range ls {
		l.GameOver(g)
	}
}

func (ls Listeners) RefreshRequested(g *Game) {
	for _, l := range ls {
		l.RefreshRequested(g)
	}
}
