package huffcode

const (
	totalNodes = 2*AlphabetSize - 1
	noChild    = -1
)

// node lives in a fixed arena indexed by int: slots 0..4 are the leaves
// (index == symbol id), merged nodes are appended after them. tieKey is
// the smallest symbol id in the node's subtree, set once when the node is
// created and never touched again.
type node struct {
	weight      uint16
	tieKey      uint8
	left, right int
}

// less reports whether n has strictly higher merge priority than other,
// i.e. a smaller (weight, tieKey) pair. Tie keys are always distinct
// between live nodes, so this is a strict total order.
func (n node) less(other node) bool {
	if n.weight != other.weight {
		return n.weight < other.weight
	}

	return n.tieKey < other.tieKey
}

// buildTree runs the greedy construction: five leaves, then exactly four
// merges of the two highest-priority active nodes, leaving a single root.
func buildTree(f Frequencies) (nodes [totalNodes]node, root int) {
	active := make([]int, 0, AlphabetSize)

	for id := 0; id < AlphabetSize; id++ {
		nodes[id] = node{
			weight: uint16(f[id]),
			tieKey: uint8(id),
			left:   noChild,
			right:  noChild,
		}
		active = append(active, id)
	}

	for next := AlphabetSize; next < totalNodes; next++ {
		first, second := twoSmallest(&nodes, active)
		left, right := active[first], active[second]

		nodes[next] = node{
			weight: nodes[left].weight + nodes[right].weight,
			tieKey: min(nodes[left].tieKey, nodes[right].tieKey),
			left:   left,
			right:  right,
		}

		lo, hi := first, second
		if lo > hi {
			lo, hi = hi, lo
		}
		active = append(active[:hi], active[hi+1:]...)
		active[lo] = next
	}

	if len(active) != 1 {
		panic("huffcode: active set did not collapse to a single root")
	}

	return nodes, active[0]
}

// twoSmallest scans the active set for the positions of the two nodes
// with the smallest (weight, tieKey) pairs; the first returned position
// is the higher-priority of the two. At five nodes a linear scan beats
// any heap.
func twoSmallest(nodes *[totalNodes]node, active []int) (first, second int) {
	first, second = 0, 1
	if nodes[active[second]].less(nodes[active[first]]) {
		first, second = second, first
	}

	for i := 2; i < len(active); i++ {
		switch {
		case nodes[active[i]].less(nodes[active[first]]):
			first, second = i, first
		case nodes[active[i]].less(nodes[active[second]]):
			second = i
		}
	}

	return first, second
}
