package dtn

import "fmt"

// Node is a mobile participant positioned on a 1-D line.
type Node struct {
	// Name uniquely identifies the node.
	Name string `json:"name" yaml:"name"`

	// Position is the node's current coordinate.
	Position int `json:"position" yaml:"position"`
}

// NewNode creates a node at the given position.
func NewNode(name string, position int) Node {
	return Node{Name: name, Position: position}
}

// String implements fmt.Stringer.
func (n Node) String() string {
	return fmt.Sprintf("%s@%d", n.Name, n.Position)
}

// indexNodes maps node names to their insertion index.
func indexNodes(nodes []Node) (map[string]int, error) {
	if len(nodes) == 0 {
		return nil, ErrNoNodes
	}
	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		if _, exists := index[n.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNode, n.Name)
		}
		index[n.Name] = i
	}
	return index, nil
}
