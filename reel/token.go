package reel

import (
	"github.com/shopspring/decimal"

	"github.com/lixenwraith/reelspin/scene"
)

// Kind is a registered symbol category
// Value is carried for display only, nothing in the game computes payouts from it
type Kind struct {
	ID    int
	Name  string
	Value decimal.Decimal
}

// Token is one pooled instance of a kind, owned by the pool or by exactly one reel
type Token struct {
	scene.Node
	kind   Kind
	inPlay bool
	gen    uint64
}

func newToken(k Kind, gen uint64) *Token {
	t := &Token{kind: k, gen: gen}
	t.Node = *scene.NewNode(k.Name)
	return t
}

// Kind returns the token's symbol kind
func (t *Token) Kind() Kind {
	return t.kind
}

// KindID returns the kind identifier
func (t *Token) KindID() int {
	return t.kind.ID
}

// KindName returns the kind name
func (t *Token) KindName() string {
	return t.kind.Name
}

// InPlay reports whether the token is checked out of the pool
func (t *Token) InPlay() bool {
	return t.inPlay
}
