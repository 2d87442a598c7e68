package interpreter

import (
	"strconv"
	"strings"
)

// Node is an element of an operation tree. Trees are immutable once built.
type Node interface {
	// String renders the subtree in program syntax.
	String() string

	node()
}

// Literal is a leaf holding a constant value.
type Literal struct {
	Value Value
}

// Param is a leaf bound to the evaluation input at Index.
type Param struct {
	Index int
}

// Call applies the operation Op to the values of Args.
type Call struct {
	Op   string
	Args []Node
}

func (Literal) node() {}
func (Param) node()   {}
func (Call) node()    {}

// Lit returns a literal leaf.
func Lit(v Value) Node {
	return Literal{Value: v}
}

// Input returns a leaf bound to input index.
func Input(index int) Node {
	return Param{Index: index}
}

// Apply returns a call node. The argument slice is copied.
func Apply(op string, args ...Node) Node {
	return Call{Op: op, Args: append([]Node(nil), args...)}
}

func (l Literal) String() string {
	return l.Value.String()
}

func (p Param) String() string {
	return "@" + strconv.Itoa(p.Index)
}

func (c Call) String() string {
	var sb strings.Builder

	sb.WriteString(c.Op)
	sb.WriteByte('(')

	for i, arg := range c.Args {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(arg.String())
	}

	sb.WriteByte(')')

	return sb.String()
}

// Depth returns the number of nested calls on the longest path from n to a leaf.
func Depth(n Node) int {
	call, ok := n.(Call)
	if !ok {
		return 0
	}

	deepest := 0

	for _, arg := range call.Args {
		deepest = max(deepest, Depth(arg))
	}

	return deepest + 1
}
