package term

import (
	"fmt"

	"github.com/funvibe/gradual/internal/config"
)

type UnaryKind int

const (
	Ite UnaryKind = iota
	IsZero
	IsNum
	IsBool
	IsFun
	Blame
	ChangePolarity
	GoDom
	GoCodom
	Tag
)

var unaryNames = map[UnaryKind]string{
	Ite:            config.IteOpName,
	IsZero:         config.IsZeroOpName,
	IsNum:          config.IsNumOpName,
	IsBool:         config.IsBoolOpName,
	IsFun:          config.IsFunOpName,
	Blame:          config.BlameOpName,
	ChangePolarity: config.ChangePolarityOpName,
	GoDom:          config.GoDomOpName,
	GoCodom:        config.GoCodomOpName,
	Tag:            config.TagOpName,
}

func (k UnaryKind) String() string {
	if name, ok := unaryNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unary(%d)", int(k))
}

// UnaryOp is a unary primitive. Text is only meaningful for Tag.
type UnaryOp struct {
	Kind UnaryKind
	Text string
}

// Unary returns the operator of the given kind with no payload.
func Unary(kind UnaryKind) UnaryOp {
	return UnaryOp{Kind: kind}
}

// TagWith returns a Tag operator appending text to a label.
func TagWith(text string) UnaryOp {
	return UnaryOp{Kind: Tag, Text: text}
}

func (op UnaryOp) String() string {
	if op.Kind == Tag {
		return fmt.Sprintf("%s[%q]", op.Kind.String(), op.Text)
	}
	return op.Kind.String()
}

type BinaryOp int

const (
	Plus BinaryOp = iota
)

func (op BinaryOp) String() string {
	switch op {
	case Plus:
		return config.PlusOpName
	}
	return fmt.Sprintf("binary(%d)", int(op))
}
