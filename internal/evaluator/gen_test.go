package evaluator

import (
	"fmt"
	"math/rand"

	"github.com/funvibe/gradual/internal/label"
	"github.com/funvibe/gradual/internal/term"
	"github.com/funvibe/gradual/internal/types"
)

// randomSource abstracts the source of randomness.
type randomSource interface {
	Intn(n int) int
}

// byteSource uses a byte slice as a source of randomness, for fuzzing.
type byteSource struct {
	data []byte
	pos  int
}

func (s *byteSource) Intn(n int) int {
	if n <= 0 || s.pos >= len(s.data) {
		return 0
	}
	v := int(s.data[s.pos])
	s.pos++
	return v % n
}

// termGenerator builds random terms that always terminate: functions are
// only ever applied where they are written, and let is not recursive.
type termGenerator struct {
	src   randomSource
	scope []term.Ident
	fresh int
}

const maxGenDepth = 5

func newTermGenerator(seed int64) *termGenerator {
	return &termGenerator{src: rand.New(rand.NewSource(seed))}
}

func newTermGeneratorFromData(data []byte) *termGenerator {
	return &termGenerator{src: &byteSource{data: data}}
}

func (g *termGenerator) freshName() term.Ident {
	g.fresh++
	return term.Ident(fmt.Sprintf("v%d", g.fresh))
}

func (g *termGenerator) withBinding(name term.Ident, body func() term.Term) term.Term {
	g.scope = append(g.scope, name)
	defer func() { g.scope = g.scope[:len(g.scope)-1] }()
	return body()
}

// Numeric generates a well-typed closed term whose value is a number.
func (g *termGenerator) Numeric(depth int) term.Term {
	if depth <= 0 {
		return g.numericLeaf()
	}
	switch g.src.Intn(7) {
	case 0, 1:
		return term.NewPlus(g.Numeric(depth-1), g.Numeric(depth-1))
	case 2:
		name := g.freshName()
		bound := g.Numeric(depth - 1)
		return term.NewLet(name, bound, g.withBinding(name, func() term.Term {
			return g.Numeric(depth - 1)
		}))
	case 3:
		return term.NewIte(
			term.NewOp1(term.IsZero, g.Numeric(depth-1)),
			g.Numeric(depth-1),
			g.Numeric(depth-1),
		)
	case 4:
		name := g.freshName()
		fn := term.NewFun(name, g.withBinding(name, func() term.Term {
			return g.Numeric(depth - 1)
		}))
		return term.NewApp(fn, g.Numeric(depth-1))
	case 5:
		return term.NewPromise(types.Num{}, label.New("gen", 0, 0), g.Numeric(depth-1))
	}
	return g.numericLeaf()
}

func (g *termGenerator) numericLeaf() term.Term {
	if len(g.scope) > 0 && g.src.Intn(2) == 0 {
		return term.NewVar(g.scope[g.src.Intn(len(g.scope))])
	}
	return term.NewNum(float64(g.src.Intn(10)))
}

// Any generates a term of any shape, including ill-typed and open ones.
func (g *termGenerator) Any(depth int) term.Term {
	if depth <= 0 {
		return g.anyLeaf()
	}
	switch g.src.Intn(10) {
	case 0:
		return term.NewPlus(g.Any(depth-1), g.Any(depth-1))
	case 1:
		name := g.freshName()
		bound := g.Any(depth - 1)
		return term.NewLet(name, bound, g.withBinding(name, func() term.Term {
			return g.Any(depth - 1)
		}))
	case 2:
		return term.NewIte(g.Any(depth-1), g.Any(depth-1), g.Any(depth-1))
	case 3:
		name := g.freshName()
		fn := term.NewFun(name, g.withBinding(name, func() term.Term {
			return g.Any(depth - 1)
		}))
		return term.NewApp(fn, g.Any(depth-1))
	case 4:
		kinds := []term.UnaryKind{term.IsZero, term.IsNum, term.IsBool, term.IsFun, term.Blame, term.ChangePolarity, term.GoDom, term.GoCodom}
		return term.NewOp1(kinds[g.src.Intn(len(kinds))], g.Any(depth-1))
	case 5:
		return term.NewPromise(g.anyType(2), label.New("fuzz", 0, 0), g.Any(depth-1))
	case 6:
		return term.NewAssume(g.anyType(2), label.New("fuzz", 0, 0), g.Any(depth-1))
	case 7:
		name := g.freshName()
		return term.NewFun(name, g.withBinding(name, func() term.Term {
			return g.Any(depth - 1)
		}))
	}
	return g.anyLeaf()
}

func (g *termGenerator) anyLeaf() term.Term {
	switch g.src.Intn(6) {
	case 0:
		return term.NewBool(g.src.Intn(2) == 0)
	case 1:
		return term.NewLbl(label.New("fuzz", g.src.Intn(10), g.src.Intn(10)))
	case 2:
		return term.NewVar("free")
	case 3:
		if len(g.scope) > 0 {
			return term.NewVar(g.scope[g.src.Intn(len(g.scope))])
		}
	}
	return term.NewNum(float64(g.src.Intn(10)))
}

func (g *termGenerator) anyType(depth int) types.Types {
	if depth > 0 && g.src.Intn(3) == 0 {
		return types.Arrow{Domain: g.anyType(depth - 1), Codomain: g.anyType(depth - 1)}
	}
	switch g.src.Intn(3) {
	case 0:
		return types.Num{}
	case 1:
		return types.Bool{}
	}
	return types.Dyn{}
}

// referenceValue evaluates a term produced by Numeric eagerly, with a plain
// map for the environment.
func referenceValue(t term.Term, env map[term.Ident]float64) float64 {
	switch n := t.(type) {
	case *term.Num:
		return n.Value
	case *term.Var:
		return env[n.Name]
	case *term.Op2:
		return referenceValue(n.Fst, env) + referenceValue(n.Snd, env)
	case *term.Let:
		return referenceValue(n.Body, extendRef(env, n.Name, referenceValue(n.Bound, env)))
	case *term.Promise:
		return referenceValue(n.Term, env)
	case *term.App:
		// Either a beta redex or an if-then-else.
		if fn, ok := n.Fn.(*term.Fun); ok {
			return referenceValue(fn.Body, extendRef(env, fn.Param, referenceValue(n.Arg, env)))
		}
		inner := n.Fn.(*term.App)
		cond := inner.Fn.(*term.Op1).Operand.(*term.Op1).Operand
		if referenceValue(cond, env) == 0 {
			return referenceValue(inner.Arg, env)
		}
		return referenceValue(n.Arg, env)
	}
	panic(fmt.Sprintf("referenceValue: unexpected term %T", t))
}

func extendRef(env map[term.Ident]float64, name term.Ident, val float64) map[term.Ident]float64 {
	next := make(map[term.Ident]float64, len(env)+1)
	for k, v := range env {
		next[k] = v
	}
	next[name] = val
	return next
}
