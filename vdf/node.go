package vdf

import (
	"strings"
)

// Node is one block of a KeyValues document. Values are either string
// leaves or nested child nodes. Keys() reports keys in the order they
// first appeared; writing an existing key replaces the value but keeps
// the original position.
type Node struct {
	keys   []string
	leaves map[string]string
	childs map[string]*Node
}

func NewNode() *Node {
	return &Node{
		leaves: map[string]string{},
		childs: map[string]*Node{},
	}
}

func (n *Node) track(key string) {
	if _, ok := n.leaves[key]; ok {
		return
	}
	if _, ok := n.childs[key]; ok {
		return
	}
	n.keys = append(n.keys, key)
}

// SetString stores a leaf value under key.
func (n *Node) SetString(key, value string) {
	n.track(key)
	delete(n.childs, key)
	n.leaves[key] = value
}

// SetNode stores a child node under key.
func (n *Node) SetNode(key string, child *Node) {
	n.track(key)
	delete(n.leaves, key)
	n.childs[key] = child
}

func (n *Node) GetString(key string) (string, bool) {
	v, ok := n.leaves[key]
	return v, ok
}

func (n *Node) GetNode(key string) (*Node, bool) {
	c, ok := n.childs[key]
	return c, ok
}

func (n *Node) Has(key string) bool {
	if _, ok := n.leaves[key]; ok {
		return true
	}
	_, ok := n.childs[key]
	return ok
}

// Keys returns the keys in first-seen order.
func (n *Node) Keys() []string {
	return n.keys
}

func (n *Node) Len() int {
	return len(n.keys)
}

// String serializes the node back to KeyValues text. Parsing the result
// yields an equivalent node, so it doubles as a round-trip check.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb, 0)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder, depth int) {
	indent := strings.Repeat("\t", depth)
	for _, key := range n.keys {
		if child, ok := n.childs[key]; ok {
			sb.WriteString(indent)
			writeQuoted(sb, key)
			sb.WriteString("\n")
			sb.WriteString(indent)
			sb.WriteString("{\n")
			child.write(sb, depth+1)
			sb.WriteString(indent)
			sb.WriteString("}\n")
			continue
		}
		sb.WriteString(indent)
		writeQuoted(sb, key)
		sb.WriteString("\t\t")
		writeQuoted(sb, n.leaves[key])
		sb.WriteString("\n")
	}
}

func writeQuoted(sb *strings.Builder, s string) {
	sb.WriteString("\"")
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString("\\\"")
		case '\\':
			sb.WriteString("\\\\")
		case '\n':
			sb.WriteString("\\n")
		case '\t':
			sb.WriteString("\\t")
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteString("\"")
}
