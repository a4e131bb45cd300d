package reel

import (
	"fmt"
	"math/rand/v2"
)

// MaxInFlight is the worst-case number of tokens held by reels at once:
// every reel spinning with rows+3 tokens plus the single replacement a recycle checks out before returning
func MaxInFlight(reels, rows int) int {
	return (rows+3)*reels + 1
}

// Pool holds idle tokens per kind and hands them out to reels
// Accessed only from the game timeline, no locking
type Pool struct {
	kinds     []Kind
	index     map[int]int // kind id -> position in kinds
	idle      [][]*Token
	allocated []int
	rng       *rand.Rand
	gen       uint64 // bumped by Init so tokens of a discarded generation are refused
}

// NewPool creates and initializes a pool sized reels*rows tokens per kind
func NewPool(kinds []Kind, reels, rows int, rng *rand.Rand) (*Pool, error) {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	p := &Pool{rng: rng}
	if err := p.Init(kinds, reels, rows); err != nil {
		return nil, err
	}
	return p, nil
}

// Init discards any previous tokens and pre-allocates reels*rows tokens for every kind
func (p *Pool) Init(kinds []Kind, reels, rows int) error {
	if reels <= 0 || rows <= 0 {
		return fmt.Errorf("%w: reels=%d rows=%d", ErrInvalidLayout, reels, rows)
	}
	if len(kinds) == 0 {
		return fmt.Errorf("%w: no symbol kinds", ErrPoolUndersized)
	}

	perKind := reels * rows
	if total, demand := perKind*len(kinds), MaxInFlight(reels, rows); total < demand {
		return fmt.Errorf("%w: %d tokens for %d in flight", ErrPoolUndersized, total, demand)
	}

	index := make(map[int]int, len(kinds))
	names := make(map[string]struct{}, len(kinds))
	idle := make([][]*Token, len(kinds))
	allocated := make([]int, len(kinds))
	for i, k := range kinds {
		if _, dup := index[k.ID]; dup {
			return fmt.Errorf("%w: id %d", ErrDuplicateKind, k.ID)
		}
		// Matching compares names, so they must be unique too
		if _, dup := names[k.Name]; dup {
			return fmt.Errorf("%w: name %q", ErrDuplicateKind, k.Name)
		}
		index[k.ID] = i
		names[k.Name] = struct{}{}

		tokens := make([]*Token, perKind)
		for j := range tokens {
			tokens[j] = newToken(k, p.gen+1)
		}
		idle[i] = tokens
		allocated[i] = perKind
	}

	p.gen++
	p.kinds = append(p.kinds[:0:0], kinds...)
	p.index = index
	p.idle = idle
	p.allocated = allocated
	return nil
}

// Kinds returns the registered kinds in registration order
func (p *Pool) Kinds() []Kind {
	return p.kinds
}

// CheckoutRandom draws a uniformly random kind and checks out one of its tokens
// A kind with no idle tokens is skipped and the draw repeats over the kinds that still have some
func (p *Pool) CheckoutRandom() (*Token, error) {
	k := p.rng.IntN(len(p.kinds))
	if len(p.idle[k]) > 0 {
		return p.take(k), nil
	}

	available := make([]int, 0, len(p.kinds))
	for i, list := range p.idle {
		if len(list) > 0 {
			available = append(available, i)
		}
	}
	if len(available) == 0 {
		return nil, ErrPoolExhausted
	}
	return p.take(available[p.rng.IntN(len(available))]), nil
}

// Checkout removes one idle token of the given kind
func (p *Pool) Checkout(kindID int) (*Token, error) {
	k, ok := p.index[kindID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kindID)
	}
	if len(p.idle[k]) == 0 {
		return nil, fmt.Errorf("%w: kind %q", ErrPoolExhausted, p.kinds[k].Name)
	}
	return p.take(k), nil
}

func (p *Pool) take(k int) *Token {
	list := p.idle[k]
	t := list[len(list)-1]
	list[len(list)-1] = nil
	p.idle[k] = list[:len(list)-1]
	t.inPlay = true
	return t
}

// Return resets the token's transient visual state and puts it back on its idle list
// Tokens from a previous Init and repeated returns are ignored
func (p *Pool) Return(t *Token) {
	if t == nil || !t.inPlay || t.gen != p.gen {
		return
	}
	k := p.index[t.kind.ID]
	t.Detach()
	t.Reset()
	t.inPlay = false
	p.idle[k] = append(p.idle[k], t)
}

// IdleCount returns idle tokens of a kind, -1 for unknown kinds
func (p *Pool) IdleCount(kindID int) int {
	k, ok := p.index[kindID]
	if !ok {
		return -1
	}
	return len(p.idle[k])
}

// Allocated returns the fixed token count of a kind, -1 for unknown kinds
func (p *Pool) Allocated(kindID int) int {
	k, ok := p.index[kindID]
	if !ok {
		return -1
	}
	return p.allocated[k]
}

// InPlayCount returns tokens of a kind currently held by reels
func (p *Pool) InPlayCount(kindID int) int {
	k, ok := p.index[kindID]
	if !ok {
		return -1
	}
	return p.allocated[k] - len(p.idle[k])
}
