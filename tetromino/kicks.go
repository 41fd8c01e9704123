package tetromino

// Kick is one translation candidate tried during rotation. A nil *Kick entry
// in a candidate list is an unused slot and is skipped.
type Kick struct {
	DX, DY int
}

func k(dx, dy int) *Kick { return &Kick{dx, dy} }

// kickKey indexes the kick table by the facing the piece rotates FROM and the
// requested direction.
type kickKey struct {
	from Facing
	dir  RotationDir
}

// jlstzKicks is the super-rotation kick table shared by J, L, S, T and Z.
// Candidate 1 is always the in-place pose.
var jlstzKicks = map[kickKey][5]*Kick{
	{North, Clockwise}:        {k(0, 0), k(-1, 0), k(-1, 1), k(0, -2), k(-1, -2)},
	{East, CounterClockwise}:  {k(0, 0), k(1, 0), k(1, -1), k(0, 2), k(1, 2)},
	{East, Clockwise}:         {k(0, 0), k(1, 0), k(1, -1), k(0, 2), k(1, 2)},
	{South, CounterClockwise}: {k(0, 0), k(-1, 0), k(-1, 1), k(0, -2), k(-1, -2)},
	{South, Clockwise}:        {k(0, 0), k(1, 0), k(1, 1), k(0, -2), k(1, -2)},
	{West, CounterClockwise}:  {k(0, 0), k(-1, 0), k(-1, -1), k(0, 2), k(-1, 2)},
	{West, Clockwise}:         {k(0, 0), k(-1, 0), k(-1, -1), k(0, 2), k(-1, 2)},
	{North, CounterClockwise}: {k(0, 0), k(1, 0), k(1, 1), k(0, -2), k(1, -2)},
}

// iKicks is the super-rotation kick table for the I piece.
var iKicks = map[kickKey][5]*Kick{
	{North, Clockwise}:        {k(0, 0), k(-2, 0), k(1, 0), k(-2, -1), k(1, 2)},
	{East, CounterClockwise}:  {k(0, 0), k(2, 0), k(-1, 0), k(2, 1), k(-1, -2)},
	{East, Clockwise}:         {k(0, 0), k(-1, 0), k(2, 0), k(-1, 2), k(2, -1)},
	{South, CounterClockwise}: {k(0, 0), k(1, 0), k(-2, 0), k(1, -2), k(-2, 1)},
	{South, Clockwise}:        {k(0, 0), k(2, 0), k(-1, 0), k(2, 1), k(-1, -2)},
	{West, CounterClockwise}:  {k(0, 0), k(-2, 0), k(1, 0), k(-2, -1), k(1, 2)},
	{West, Clockwise}:         {k(0, 0), k(1, 0), k(-2, 0), k(1, -2), k(-2, 1)},
	{North, CounterClockwise}: {k(0, 0), k(-1, 0), k(2, 0), k(-1, 2), k(2, -1)},
}

// oKicks: O rotates in place, remaining slots unused.
var oKicks = [5]*Kick{k(0, 0), nil, nil, nil, nil}

// Kicks returns the ordered kick candidates for rotating the given type from
// the given facing in the given direction. Unused slots are nil.
func Kicks(t Type, from Facing, dir RotationDir) [5]*Kick {
	switch t {
	case O:
		return oKicks
	case I:
		return iKicks[kickKey{from, dir}]
	default:
		return jlstzKicks[kickKey{from, dir}]
	}
}
