package huffcode

// assignCodes derives every leaf's codeword from the finished tree in one
// depth-first walk: descending into the left child appends a 0 bit, into
// the right child a 1 bit. A leaf's arena index is its symbol id, so the
// walk fills the table directly.
func assignCodes(nodes *[totalNodes]node, root int) (table Table) {
	var walk func(idx int, bits, depth uint8)
	walk = func(idx int, bits, depth uint8) {
		n := nodes[idx]
		if n.left == noChild {
			table[idx] = Code{Len: depth, Bits: bits}
			return
		}

		walk(n.left, bits<<1, depth+1)
		walk(n.right, bits<<1|1, depth+1)
	}

	walk(root, 0, 0)

	return table
}
