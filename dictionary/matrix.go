package dictionary

import "encoding/binary"

// ConnectionCostMatrix is the dense forward x backward i16 cost table
// indexed by (right_context_id_of_left_node, left_context_id_of_right_node).
type ConnectionCostMatrix struct {
	forward  int
	backward int
	costs    []int16
}

// NewConnectionCostMatrix builds a matrix from a flat row-major costs
// slice; len(costs) must equal forward*backward.
func NewConnectionCostMatrix(forward, backward int, costs []int16) *ConnectionCostMatrix {
	return &ConnectionCostMatrix{forward: forward, backward: backward, costs: costs}
}

// Cost returns matrix[right][left], the edge cost spec.md's Viterbi
// recurrence charges between a left node ending with right-context id
// `right` and a right node beginning with left-context id `left`.
func (m *ConnectionCostMatrix) Cost(right, left uint16) int16 {
	idx := int(right)*m.backward + int(left)
	if idx < 0 || idx >= len(m.costs) {
		return 0
	}
	return m.costs[idx]
}

// Dimensions returns (forward, backward).
func (m *ConnectionCostMatrix) Dimensions() (int, int) { return m.forward, m.backward }

// DecodeMatrix parses matrix.mtx's decompressed bytes: a `u16 forward,
// u16 backward` header then `i16[forward*backward]` costs, row-major,
// little-endian.
func DecodeMatrix(b []byte) *ConnectionCostMatrix {
	forward := int(binary.LittleEndian.Uint16(b[0:2]))
	backward := int(binary.LittleEndian.Uint16(b[2:4]))
	n := forward * backward
	costs := make([]int16, n)
	for i := 0; i < n; i++ {
		costs[i] = int16(binary.LittleEndian.Uint16(b[4+2*i:]))
	}
	return &ConnectionCostMatrix{forward: forward, backward: backward, costs: costs}
}

// Encode serializes the matrix back to matrix.mtx's on-disk shape.
func (m *ConnectionCostMatrix) Encode() []byte {
	out := make([]byte, 4+2*len(m.costs))
	binary.LittleEndian.PutUint16(out[0:2], uint16(m.forward))
	binary.LittleEndian.PutUint16(out[2:4], uint16(m.backward))
	for i, c := range m.costs {
		binary.LittleEndian.PutUint16(out[4+2*i:], uint16(c))
	}
	return out
}
