package arith

import (
	"strconv"
	"strings"
)

// Node is a node in the tree of a parsed expression. Every node owns its
// children exclusively, and every leaf is a literal.
type Node struct {
	// Kind is the kind of the node.
	Kind NodeKind
	// Value is the value of a NodeLiteral.
	Value float64
	// Left is the left operand of a binary operation, or the inner expression
	// of a NodeGrouped.
	Left *Node
	// Right is the right operand of a binary operation.
	Right *Node
}

// NodeKind is the kind of a Node.
type NodeKind int8

const (
	NodeNone NodeKind = iota

	NodeLiteral // value
	NodeAdd     // left + right
	NodeSub     // left - right
	NodeMul     // left * right
	NodeDiv     // left / right
	NodePow     // left ^ right
	NodeGrouped // (left)
)

var nodeKindNames = [...]string{
	NodeNone:    "None",
	NodeLiteral: "Literal",
	NodeAdd:     "Add",
	NodeSub:     "Sub",
	NodeMul:     "Mul",
	NodeDiv:     "Div",
	NodePow:     "Pow",
	NodeGrouped: "Grouped",
}

func (k NodeKind) String() string {
	if k < 0 || int(k) >= len(nodeKindNames) {
		return "NodeKind(" + strconv.Itoa(int(k)) + ")"
	}
	return nodeKindNames[k]
}

// binaryNode maps operator tokens to the kind of node they produce.
var binaryNode = map[TokenKind]NodeKind{
	TokenPlus:  NodeAdd,
	TokenMinus: NodeSub,
	TokenStar:  NodeMul,
	TokenSlash: NodeDiv,
	TokenCaret: NodePow,
}

// operatorToken is the inverse of binaryNode.
var operatorToken = map[NodeKind]TokenKind{
	NodeAdd: TokenPlus,
	NodeSub: TokenMinus,
	NodeMul: TokenStar,
	NodeDiv: TokenSlash,
	NodePow: TokenCaret,
}

// String renders the expression as text that parses back to an equivalent
// tree.
func (n *Node) String() string {
	return Render(n)
}

// GoString formats the tree in its tagged debug form, e.g.
// Add(Literal(1), Grouped(Literal(2))).
func (n Node) GoString() string {
	var b strings.Builder
	n.debug(&b)
	return b.String()
}

func (n *Node) debug(b *strings.Builder) {
	switch n.Kind {
	case NodeLiteral:
		b.WriteString("Literal(")
		b.WriteString(debugNum(n.Value))
		b.WriteByte(')')
	case NodeAdd, NodeSub, NodeMul, NodeDiv, NodePow:
		b.WriteString(n.Kind.String())
		b.WriteByte('(')
		n.Left.debug(b)
		b.WriteString(", ")
		n.Right.debug(b)
		b.WriteByte(')')
	case NodeGrouped:
		b.WriteString("Grouped(")
		n.Left.debug(b)
		b.WriteByte(')')
	default:
		// Invalid nodes use invalid characters.
		b.WriteString("$" + n.Kind.String() + "$")
	}
}
