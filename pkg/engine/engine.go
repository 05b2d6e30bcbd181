// Package engine orchestrates position state, search and evaluation behind a small
// synchronous API: set a position, play a move, ask for the engine's best move.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/Codeurs2020/chess-bot/pkg/board"
	"github.com/Codeurs2020/chess-bot/pkg/board/fen"
	"github.com/Codeurs2020/chess-bot/pkg/board/san"
	"github.com/Codeurs2020/chess-bot/pkg/eval"
	"github.com/Codeurs2020/chess-bot/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(1, 0, 0)

// entrySize approximates a transposition table node's footprint in bytes, used only to
// translate a user-facing MB hash size into a bounded entry count.
const entrySize = 48

// DefaultHashSizeMB is used when WithHashSize is not given.
const DefaultHashSizeMB = 16

// Options are the engine's runtime-visible parameters.
type Options struct {
	MaxDepth uint // 0 == search.DefaultMaxDepth.
	HashMB   uint // transposition table size, in megabytes.
}

func (o Options) String() string {
	return fmt.Sprintf("{maxDepth=%v, hashMB=%v}", o.MaxDepth, o.HashMB)
}

// Engine encapsulates position state, search and evaluation for one game in progress.
// Not safe for concurrent use by multiple goroutines; internally mutex-guarded so that
// a caller may safely share one Engine value across sequential calls from different
// goroutines.
type Engine struct {
	name, author string
	opts         Options

	pos *board.Position
	tt  *search.TranspositionTable

	mu sync.Mutex
}

// Option is an engine construction option.
type Option func(*Engine)

// WithMaxDepth bounds iterative deepening to the given ply depth.
func WithMaxDepth(depth uint) Option {
	return func(e *Engine) {
		e.opts.MaxDepth = depth
	}
}

// WithHashSize sets the transposition table size, in megabytes.
func WithHashSize(mb uint) Option {
	return func(e *Engine) {
		e.opts.HashMB = mb
	}
}

// New constructs an Engine at the standard starting position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
		opts:   Options{HashMB: DefaultHashSizeMB},
	}
	for _, fn := range opts {
		fn(e)
	}

	e.pos = board.Start()
	e.tt = search.NewTranspositionTable(capacityFor(e.opts.HashMB))

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

func capacityFor(mb uint) int {
	if mb == 0 {
		mb = DefaultHashSizeMB
	}
	return int(mb) << 20 / entrySize
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the engine author.
func (e *Engine) Author() string {
	return e.author
}

// Position returns the current position in FEN notation.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.pos)
}

// SetPosition resets the engine to the position described by the given FEN record, and
// discards any cached search state: a new position invalidates prior transposition
// table entries keyed on a different game history shape.
func (e *Engine) SetPosition(ctx context.Context, record string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos, err := fen.Decode(record)
	if err != nil {
		return fmt.Errorf("engine: set position: %w", err)
	}

	logw.Infof(ctx, "SetPosition %v", record)
	e.pos = pos
	e.tt = search.NewTranspositionTable(capacityFor(e.opts.HashMB))
	return nil
}

// Play applies the move described by a SAN string to the current position.
func (e *Engine) Play(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, err := san.Parse(e.pos, move)
	if err != nil {
		return fmt.Errorf("engine: play %q: %w", move, err)
	}

	next, err := e.pos.Apply(m)
	if err != nil {
		return fmt.Errorf("engine: play %q: %w", move, err)
	}

	logw.Infof(ctx, "Play %v: %v", move, next)
	e.pos = next
	return nil
}

// BestMove runs iterative deepening from the current position and returns the deepest
// principal variation found. Returns search.ErrTerminalSearch if the current position
// has no legal moves.
func (e *Engine) BestMove(ctx context.Context) (search.PV, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ids := search.IterativeDeepening{Search: search.AlphaBeta{Eval: eval.PieceSquare{}}}
	opt := search.Options{}
	if e.opts.MaxDepth > 0 {
		opt.DepthLimit = lang.Some(e.opts.MaxDepth)
	}

	pv, err := ids.Run(ctx, e.tt, e.pos, opt)
	if err != nil {
		return search.PV{}, err
	}

	logw.Infof(ctx, "BestMove %v: %v", e.pos, pv)
	return pv, nil
}
