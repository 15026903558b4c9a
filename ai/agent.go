package ai

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/apex/log"
	"golang.org/x/exp/slices"

	"github.com/jade-guiton/chess/chess"
)

// Agent picks one move from the legal moves of a position. Implementations
// may keep internal state between calls; they are not required to be safe
// for concurrent use.
type Agent interface {
	Name() string
	PickMove(pos *chess.Position, legal []chess.Move) chess.Move
}

// RandomAgent picks a uniformly random legal move.
type RandomAgent struct{}

func (RandomAgent) Name() string { return "Random" }

func (RandomAgent) PickMove(pos *chess.Position, legal []chess.Move) chess.Move {
	return legal[rand.Intn(len(legal))]
}

// SearchAgent picks the move maximizing a fixed-depth negamax search.
type SearchAgent struct {
	depth int
}

// NewSearchAgent builds a search agent; depth must be at least 1.
func NewSearchAgent(depth int) *SearchAgent {
	if depth < 1 {
		panic("search depth must be at least 1")
	}
	return &SearchAgent{depth: depth}
}

func (a *SearchAgent) Name() string { return fmt.Sprintf("Search %d", a.depth) }

// PickMove runs a full-window search under each legal move and keeps the
// first best. Only legal moves are considered at the root, so the chosen
// move never loses the king even when every line is lost.
func (a *SearchAgent) PickMove(pos *chess.Position, legal []chess.Move) chess.Move {
	t0 := time.Now()
	best := legal[0]
	max := -MaxScore - 1
	for _, mov := range legal {
		pos2 := pos.Clone()
		pos2.ApplyMove(mov)
		score := -negamax(&pos2, a.depth-1, -MaxScore, MaxScore)
		if score > max {
			max = score
			best = mov
		}
	}
	log.WithFields(log.Fields{
		"side":    pos.SideToMove().String(),
		"depth":   a.depth,
		"score":   int32(max),
		"elapsed": time.Since(t0).String(),
	}).Debug("search completed")
	return best
}

// ParallelAgent runs another agent's PickMove on a background goroutine so
// a caller loop can poll for the result. At most one request may be in
// flight; Submit while thinking, or TakeResult without a submission, is a
// programming error and panics.
type ParallelAgent struct {
	mu       sync.Mutex // held by the worker while the inner agent thinks
	agent    Agent
	result   chan chess.Move
	nameMu   sync.Mutex
	lastName string
}

func NewParallelAgent(agent Agent) *ParallelAgent {
	return &ParallelAgent{
		agent:    agent,
		lastName: agent.Name(),
	}
}

// Name returns the wrapped agent's name. If the agent is busy thinking, the
// most recently observed name is returned instead of blocking.
func (p *ParallelAgent) Name() string {
	p.nameMu.Lock()
	defer p.nameMu.Unlock()
	if p.mu.TryLock() {
		p.lastName = p.agent.Name()
		p.mu.Unlock()
	}
	return p.lastName
}

// Submit starts picking a move in the background. The position and move
// list are copied, so the caller may keep mutating its own.
func (p *ParallelAgent) Submit(pos *chess.Position, legal []chess.Move) {
	if p.result != nil {
		panic("move request already in flight")
	}
	pos2 := pos.Clone()
	moves := slices.Clone(legal)
	ch := make(chan chess.Move, 1)
	p.result = ch
	go func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		ch <- p.agent.PickMove(&pos2, moves)
	}()
}

// Thinking reports whether a submitted request has not been taken yet.
func (p *ParallelAgent) Thinking() bool { return p.result != nil }

// TakeResult returns the picked move if the background computation has
// finished, clearing the in-flight request; otherwise it returns false
// without blocking.
func (p *ParallelAgent) TakeResult() (chess.Move, bool) {
	if p.result == nil {
		panic("no move request in flight")
	}
	select {
	case mov := <-p.result:
		p.result = nil
		return mov, true
	default:
		return 0, false
	}
}
