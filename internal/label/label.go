// Package label describes blame sites: which contract was violated, where it
// was written and which party is responsible.
package label

import (
	"fmt"
	"strings"
)

// TyPath locates a contract check inside an arrow type.
type TyPath interface {
	String() string
	pathNode()
}

// PathNil is the root of a type.
type PathNil struct{}

func (PathNil) pathNode()      {}
func (PathNil) String() string { return "." }

// PathDomain points into the argument side of an arrow.
type PathDomain struct {
	Inner TyPath
}

func (PathDomain) pathNode() {}
func (p PathDomain) String() string {
	return "dom" + pathSuffix(p.Inner)
}

// PathCodomain points into the result side of an arrow.
type PathCodomain struct {
	Inner TyPath
}

func (PathCodomain) pathNode() {}
func (p PathCodomain) String() string {
	return "codom" + pathSuffix(p.Inner)
}

func pathSuffix(p TyPath) string {
	if p == nil {
		return ""
	}
	if _, ok := p.(PathNil); ok {
		return ""
	}
	return "." + p.String()
}

// PathsEqual compares two paths structurally. A nil path equals PathNil.
func PathsEqual(a, b TyPath) bool {
	if a == nil {
		a = PathNil{}
	}
	if b == nil {
		b = PathNil{}
	}
	switch av := a.(type) {
	case PathNil:
		_, ok := b.(PathNil)
		return ok
	case PathDomain:
		bv, ok := b.(PathDomain)
		return ok && PathsEqual(av.Inner, bv.Inner)
	case PathCodomain:
		bv, ok := b.(PathCodomain)
		return ok && PathsEqual(av.Inner, bv.Inner)
	}
	return false
}

// Label is carried through evaluation as plain data. The machine never looks
// inside it; only the contract primitives derive new labels from old ones.
type Label struct {
	Tag      string // Human readable description of the contract
	L        int    // Start offset of the annotated term
	R        int    // End offset of the annotated term
	Polarity bool   // true blames the term, false blames its context
	Path     TyPath
}

// New returns a positive label at the root of its type.
func New(tag string, l, r int) Label {
	return Label{Tag: tag, L: l, R: r, Polarity: true, Path: PathNil{}}
}

// Equal reports whether two labels agree field by field.
func Equal(a, b Label) bool {
	return a.Tag == b.Tag &&
		a.L == b.L &&
		a.R == b.R &&
		a.Polarity == b.Polarity &&
		PathsEqual(a.Path, b.Path)
}

// Equal is the method form of the package level Equal.
func (l Label) Equal(other Label) bool { return Equal(l, other) }

// WithPolarityFlipped swaps the blamed party.
func (l Label) WithPolarityFlipped() Label {
	l.Polarity = !l.Polarity
	return l
}

// InDomain descends into the argument side of an arrow.
func (l Label) InDomain() Label {
	l.Path = PathDomain{Inner: l.root()}
	return l
}

// InCodomain descends into the result side of an arrow.
func (l Label) InCodomain() Label {
	l.Path = PathCodomain{Inner: l.root()}
	return l
}

// WithTag appends a line of context to the tag.
func (l Label) WithTag(extra string) Label {
	l.Tag = l.Tag + "\n" + extra
	return l
}

func (l Label) root() TyPath {
	if l.Path == nil {
		return PathNil{}
	}
	return l.Path
}

func (l Label) String() string {
	party := "positive"
	if !l.Polarity {
		party = "negative"
	}
	tag := strings.ReplaceAll(l.Tag, "\n", "; ")
	return fmt.Sprintf("%s [%d:%d] %s %s", tag, l.L, l.R, party, l.root().String())
}
