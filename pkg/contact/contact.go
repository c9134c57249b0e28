package contact

const (
	// DefaultRange is the proximity threshold below which two nodes are in contact.
	DefaultRange = 30
)

// Pair is an unordered contact between two nodes, identified by their
// index in insertion order. A is always smaller than B.
type Pair struct {
	A int
	B int
}

// Detector reports which node pairs are within proximity of each other.
type Detector struct {
	// Range is the strict upper bound on the distance between nodes in contact.
	Range int
}

// NewDetector creates a detector with the given range.
func NewDetector(r int) *Detector {
	return &Detector{Range: r}
}

// InContact reports whether two positions are strictly closer than Range.
func (d *Detector) InContact(a, b int) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < d.Range
}

// Detect returns every pair of distinct nodes in contact, ordered by A then B.
func (d *Detector) Detect(positions []int) []Pair {
	pairs := make([]Pair, 0)
	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			if d.InContact(positions[i], positions[j]) {
				pairs = append(pairs, Pair{A: i, B: j})
			}
		}
	}
	return pairs
}

// Set answers contact queries in either orientation.
type Set struct {
	pairs map[Pair]struct{}
}

// NewSet indexes the given pairs.
func NewSet(pairs []Pair) *Set {
	s := &Set{pairs: make(map[Pair]struct{}, len(pairs))}
	for _, p := range pairs {
		s.pairs[normalize(p.A, p.B)] = struct{}{}
	}
	return s
}

// Has reports whether a and b are in contact. A node is never in contact with itself.
func (s *Set) Has(a, b int) bool {
	if a == b {
		return false
	}
	_, ok := s.pairs[normalize(a, b)]
	return ok
}

// Len returns the number of unordered pairs.
func (s *Set) Len() int {
	return len(s.pairs)
}

func normalize(a, b int) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}
