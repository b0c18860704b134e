package board

import (
	"fmt"

	"github.com/daystram/draughts/position"
)

const (
	Width  = position.Dimension
	Height = position.Dimension
)

// Board is the 8x8 grid. It is a plain value: two boards holding the same
// pieces compare equal with ==, and copying it snapshots it.
type Board struct {
	cells [Height][Width]Piece
}

// Hop records one applied origin-target leg so it can be undone.
type Hop struct {
	From, To   position.Pos
	Moved      Piece // as it stood on From, before any promotion
	Captured   Piece
	CapturedAt position.Pos
}

func (h Hop) IsCapture() bool {
	return !h.Captured.IsEmpty()
}

func (h Hop) String() string {
	sep := "-"
	if h.IsCapture() {
		sep = "x"
	}
	return h.From.Notation() + sep + h.To.Notation()
}

type boardConfig struct {
	layout string
	rows   []string
	empty  bool
}

type BoardOption func(*boardConfig)

// WithRows builds the board from one marker string per row, top row first.
func WithRows(rows ...string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.rows = rows
	}
}

// WithLayout builds the board from rows joined with '/', as printed by Layout.
func WithLayout(layout string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.layout = layout
	}
}

// WithEmpty builds a board without any piece.
func WithEmpty() BoardOption {
	return func(cfg *boardConfig) {
		cfg.empty = true
	}
}

// NewBoard returns the standard starting board unless an option says otherwise.
func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{}
	switch {
	case cfg.rows != nil:
		if err := b.parseRows(cfg.rows); err != nil {
			return nil, err
		}
	case cfg.layout != "":
		if err := b.parseLayout(cfg.layout); err != nil {
			return nil, err
		}
	case !cfg.empty:
		b.Reset()
	}
	return b, nil
}

// Reset places a man on every starting cell and clears the rest.
func (b *Board) Reset() {
	for _, p := range position.All() {
		b.cells[p.Row()][p.Col()] = NoPiece
		if c := InitialColor(p); c != ColorUnknown {
			b.cells[p.Row()][p.Col()] = NewMan(c)
		}
	}
}

func (b *Board) Put(p position.Pos, piece Piece) {
	if piece.IsEmpty() {
		panic(fmt.Sprintf("put empty piece on %s", p))
	}
	b.cells[p.Row()][p.Col()] = piece
}

// Remove empties an occupied cell and returns what it held. Removing from an
// empty cell is a programming error.
func (b *Board) Remove(p position.Pos) Piece {
	piece := b.Piece(p)
	if piece.IsEmpty() {
		panic(fmt.Sprintf("remove from empty cell %s", p))
	}
	b.cells[p.Row()][p.Col()] = NoPiece
	return piece
}

func (b *Board) Move(from, to position.Pos) {
	b.Put(to, b.Remove(from))
}

func (b *Board) Piece(p position.Pos) Piece {
	if !p.IsValid() {
		return NoPiece
	}
	return b.cells[p.Row()][p.Col()]
}

func (b *Board) IsEmpty(p position.Pos) bool {
	return b.Piece(p).IsEmpty()
}

func (b *Board) Color(p position.Pos) Color {
	return b.Piece(p).Color
}

func (b *Board) Dimension() int {
	return position.Dimension
}

// Positions returns every cell holding a piece of color c, in row-major order.
func (b *Board) Positions(c Color) []position.Pos {
	var ps []position.Pos
	for _, p := range position.All() {
		if piece := b.Piece(p); !piece.IsEmpty() && piece.Color == c {
			ps = append(ps, p)
		}
	}
	return ps
}

// Pieces returns the pieces of color c, in the order of Positions.
func (b *Board) Pieces(c Color) []Piece {
	ps := b.Positions(c)
	pieces := make([]Piece, 0, len(ps))
	for _, p := range ps {
		pieces = append(pieces, b.Piece(p))
	}
	return pieces
}

// Count returns how many pieces of color c are on the board.
func (b *Board) Count(c Color) int {
	return len(b.Positions(c))
}

// BetweenPieces returns the pieces standing strictly between from and to.
func (b *Board) BetweenPieces(from, to position.Pos) []Piece {
	var pieces []Piece
	for _, p := range position.Between(from, to) {
		if piece := b.Piece(p); !piece.IsEmpty() {
			pieces = append(pieces, piece)
		}
	}
	return pieces
}

// CheckHop validates the hop chain[pair] -> chain[pair+1] for the side turn.
func (b *Board) CheckHop(turn Color, pair int, chain []position.Pos) error {
	if pair < 0 || pair+1 >= len(chain) {
		return ErrBadFormat
	}
	origin, target := chain[pair], chain[pair+1]
	if !origin.IsValid() || !target.IsValid() {
		return ErrOutCoordinate
	}
	piece := b.Piece(origin)
	if piece.IsEmpty() {
		return ErrEmptyOrigin
	}
	if piece.Color == turn.Opposite() {
		return ErrOppositePiece
	}
	if !b.IsEmpty(target) {
		return ErrNotEmptyTarget
	}
	return piece.CheckMovement(origin, target, b.BetweenPieces(origin, target))
}

// ApplyHop executes a hop already accepted by CheckHop: it removes the
// captured piece, relocates the mover and promotes it if it reached its
// promotion row.
func (b *Board) ApplyHop(pair int, chain []position.Pos) Hop {
	from, to := chain[pair], chain[pair+1]
	h := Hop{
		From:       from,
		To:         to,
		Moved:      b.Piece(from),
		CapturedAt: position.Invalid,
	}
	for _, p := range position.Between(from, to) {
		if !b.IsEmpty(p) {
			h.Captured = b.Remove(p)
			h.CapturedAt = p
			break
		}
	}
	b.Move(from, to)
	if piece := b.Piece(to); piece.CanPromote(to) {
		b.Remove(to)
		b.Put(to, piece.Promoted())
	}
	return h
}

// UndoHop reverts ApplyHop exactly, restoring the captured piece and the
// mover as it was before any promotion.
func (b *Board) UndoHop(h Hop) {
	b.Remove(h.To)
	b.Put(h.From, h.Moved)
	if h.IsCapture() {
		b.Put(h.CapturedAt, h.Captured)
	}
}

// CheckChain applies the whole-chain rule once every hop has been tried: a
// chain of more than two positions must capture on every hop.
func (b *Board) CheckChain(hopErr error, captures, chainLen int) error {
	if hopErr != nil {
		return hopErr
	}
	if chainLen > 2 && captures < chainLen-1 {
		return ErrTooMuchJumps
	}
	return nil
}

// CaptureTargets returns the landing cells from which the piece on from would
// capture an opposing piece in a single legal hop.
func (b *Board) CaptureTargets(turn Color, from position.Pos) []position.Pos {
	var targets []position.Pos
	for steps := 2; steps < position.Dimension; steps++ {
		for _, to := range position.DiagonalTargets(from, steps) {
			if len(b.BetweenPieces(from, to)) == 0 {
				continue
			}
			if b.CheckHop(turn, 0, []position.Pos{from, to}) == nil {
				targets = append(targets, to)
			}
		}
	}
	return targets
}

// CaptureCandidates returns the pieces of turn, other than the one on
// exclude, that could capture something right now.
func (b *Board) CaptureCandidates(turn Color, exclude position.Pos) []position.Pos {
	var candidates []position.Pos
	for _, p := range b.Positions(turn) {
		if p != exclude && len(b.CaptureTargets(turn, p)) > 0 {
			candidates = append(candidates, p)
		}
	}
	return candidates
}

// HasMovement reports whether the piece on from has any legal one-step or
// one-jump hop.
func (b *Board) HasMovement(turn Color, from position.Pos) bool {
	for steps := 1; steps <= maxManDistance; steps++ {
		for _, to := range position.DiagonalTargets(from, steps) {
			if b.CheckHop(turn, 0, []position.Pos{from, to}) == nil {
				return true
			}
		}
	}
	return false
}

func (b *Board) Clone() *Board {
	c := *b
	return &c
}

func (b *Board) Equal(o *Board) bool {
	return o != nil && b.cells == o.cells
}
