package evaluator

import (
	"hash/fnv"
	"math/bits"

	"github.com/funvibe/gradual/internal/term"
)

const (
	hamtBits = 5
	hamtSize = 1 << hamtBits // 32
	hamtMask = hamtSize - 1
)

// Environment is an immutable map from identifiers to thunks, stored as a
// hash array mapped trie. Extend copies only the path to the changed entry,
// so every closure can keep its own view cheaply.
type Environment struct {
	root  *hamtNode
	count int
}

// hamtNode is a node in the HAMT
type hamtNode struct {
	bitmap uint32        // which indices are populated
	nodes  []interface{} // hamtEntry or *hamtNode
}

type hamtEntry struct {
	hash  uint32
	ident term.Ident
	thunk *Thunk
}

var emptyEnvironment = &Environment{}

// EmptyEnvironment returns the environment with no bindings.
func EmptyEnvironment() *Environment {
	return emptyEnvironment
}

// Len returns the number of bindings.
func (e *Environment) Len() int {
	if e == nil {
		return 0
	}
	return e.count
}

// Lookup returns the thunk bound to ident.
func (e *Environment) Lookup(ident term.Ident) (*Thunk, bool) {
	if e == nil || e.root == nil {
		return nil, false
	}
	th := e.root.get(hashIdent(ident), ident, 0)
	return th, th != nil
}

// Extend returns a new environment where ident is bound to th. The receiver
// is left untouched.
func (e *Environment) Extend(ident term.Ident, th *Thunk) *Environment {
	hash := hashIdent(ident)

	root := &hamtNode{}
	count := 0
	if e != nil {
		if e.root != nil {
			root = e.root
		}
		count = e.count
	}

	newRoot, added := root.put(hash, ident, th, 0)
	if added {
		count++
	}
	return &Environment{root: newRoot, count: count}
}

// Idents returns every bound identifier, in no particular order.
func (e *Environment) Idents() []term.Ident {
	if e == nil || e.root == nil {
		return nil
	}
	idents := make([]term.Ident, 0, e.count)
	e.root.collectIdents(&idents)
	return idents
}

func (n *hamtNode) get(hash uint32, ident term.Ident, shift uint) *Thunk {
	if shift >= 32 {
		// Collision bucket search
		for _, node := range n.nodes {
			if entry, ok := node.(hamtEntry); ok && entry.ident == ident {
				return entry.thunk
			}
		}
		return nil
	}

	idx := (hash >> shift) & hamtMask
	bit := uint32(1) << idx

	if n.bitmap&bit == 0 {
		return nil
	}

	pos := bits.OnesCount32(n.bitmap & (bit - 1))
	switch v := n.nodes[pos].(type) {
	case hamtEntry:
		if v.hash == hash && v.ident == ident {
			return v.thunk
		}
		return nil
	case *hamtNode:
		return v.get(hash, ident, shift+hamtBits)
	}
	return nil
}

func (n *hamtNode) put(hash uint32, ident term.Ident, th *Thunk, shift uint) (*hamtNode, bool) {
	entry := hamtEntry{hash: hash, ident: ident, thunk: th}

	// Identical hash, different identifiers: all hash bits are used up, so
	// the node becomes a flat collision bucket.
	if shift >= 32 {
		newNode := n.clone()
		for i, node := range newNode.nodes {
			if existing, ok := node.(hamtEntry); ok && existing.ident == ident {
				newNode.nodes[i] = entry
				return newNode, false
			}
		}
		newNode.nodes = append(newNode.nodes, entry)
		return newNode, true
	}

	idx := (hash >> shift) & hamtMask
	bit := uint32(1) << idx
	newNode := n.clone()

	if n.bitmap&bit == 0 {
		newNode.bitmap |= bit
		pos := bits.OnesCount32(newNode.bitmap & (bit - 1))

		newNode.nodes = append(newNode.nodes, nil)
		copy(newNode.nodes[pos+1:], newNode.nodes[pos:])
		newNode.nodes[pos] = entry
		return newNode, true
	}

	pos := bits.OnesCount32(n.bitmap & (bit - 1))
	switch v := newNode.nodes[pos].(type) {
	case hamtEntry:
		if v.hash == hash && v.ident == ident {
			// Shadowing: same identifier, new thunk.
			newNode.nodes[pos] = entry
			return newNode, false
		}

		// Push both entries one level down.
		child := &hamtNode{}
		child, _ = child.put(v.hash, v.ident, v.thunk, shift+hamtBits)
		child, _ = child.put(hash, ident, th, shift+hamtBits)
		newNode.nodes[pos] = child
		return newNode, true

	case *hamtNode:
		newChild, added := v.put(hash, ident, th, shift+hamtBits)
		newNode.nodes[pos] = newChild
		return newNode, added
	}

	return newNode, false
}

func (n *hamtNode) clone() *hamtNode {
	newNode := &hamtNode{
		bitmap: n.bitmap,
		nodes:  make([]interface{}, len(n.nodes)),
	}
	copy(newNode.nodes, n.nodes)
	return newNode
}

func (n *hamtNode) collectIdents(idents *[]term.Ident) {
	for _, node := range n.nodes {
		switch v := node.(type) {
		case hamtEntry:
			*idents = append(*idents, v.ident)
		case *hamtNode:
			v.collectIdents(idents)
		}
	}
}

func hashIdent(ident term.Ident) uint32 {
	h := fnv.New32a()
	h.Write([]byte(ident))
	return h.Sum32()
}
