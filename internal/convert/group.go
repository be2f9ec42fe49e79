// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// group.go - Byte grouping and per-group views.
//
// Grouping always walks the buffer left to right; endianness is applied
// WITHIN each group, never across the whole buffer.
package convert

// GroupSizes are the fixed group sizes offered by the interface.
var GroupSizes = []int{1, 2, 4, 8}

// validGroupSize reports whether size is one of GroupSizes.
func validGroupSize(size int) bool {
	for _, s := range GroupSizes {
		if s == size {
			return true
		}
	}
	return false
}

// Chunk splits b into fixed-size groups. The final group may be shorter when
// len(b) is not a multiple of size. Size must be 1, 2, 4, or 8.
func Chunk(b []byte, size int) ([][]byte, error) {
	if !validGroupSize(size) {
		return nil, &WidthError{Got: size}
	}
	var out [][]byte
	for i := 0; i < len(b); i += size {
		end := i + size
		if end > len(b) {
			end = len(b)
		}
		out = append(out, b[i:end])
	}
	return out, nil
}

// ChunkSizes splits b by explicit group sizes (e.g., [1,1,6]). Non-positive
// sizes are skipped, splitting stops when b is exhausted, and any bytes not
// covered by the pattern form one final group. An empty pattern yields a
// single group holding all of b.
func ChunkSizes(b []byte, sizes []int) [][]byte {
	if len(sizes) == 0 {
		if len(b) == 0 {
			return nil
		}
		return [][]byte{b}
	}
	var out [][]byte
	i := 0
	for _, sz := range sizes {
		if sz <= 0 {
			continue
		}
		if i >= len(b) {
			break
		}
		end := i + sz
		if end > len(b) {
			end = len(b)
		}
		out = append(out, b[i:end])
		i = end
	}
	if i < len(b) {
		out = append(out, b[i:])
	}
	return out
}

// reverseCopy returns a reversed copy of the group. The input buffer is
// never mutated.
func reverseCopy(b []byte) []byte {
	out := make([]byte, len(b))
	for i, x := range b {
		out[len(b)-1-i] = x
	}
	return out
}

// orderGroups applies the byte order within each group.
func orderGroups(groups [][]byte, e Endianness) [][]byte {
	if e == Big {
		return groups
	}
	out := make([][]byte, len(groups))
	for i, g := range groups {
		out[i] = reverseCopy(g)
	}
	return out
}

// GroupedHex renders b as fixed-size groups of hex pairs with the byte order
// applied within each group.
func GroupedHex(b []byte, size int, e Endianness) ([]string, error) {
	groups, err := Chunk(b, size)
	if err != nil {
		return nil, err
	}
	return hexStrings(orderGroups(groups, e)), nil
}

// GroupedHexSizes is GroupedHex with an explicit size pattern.
func GroupedHexSizes(b []byte, sizes []int, e Endianness) []string {
	return hexStrings(orderGroups(ChunkSizes(b, sizes), e))
}

func hexStrings(groups [][]byte) []string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, FormatHex(g))
	}
	return out
}

// GroupedInts interprets each fixed-size group of b as an unsigned and a
// two's-complement value under the given byte order. Group widths are
// inferred per group, so a short final group is handled naturally.
func GroupedInts(b []byte, size int, e Endianness) (unsigned []uint64, signed []int64, err error) {
	groups, err := Chunk(b, size)
	if err != nil {
		return nil, nil, err
	}
	return groupInts(groups, e)
}

// GroupedIntsSizes is GroupedInts with an explicit size pattern.
func GroupedIntsSizes(b []byte, sizes []int, e Endianness) (unsigned []uint64, signed []int64, err error) {
	return groupInts(ChunkSizes(b, sizes), e)
}

func groupInts(groups [][]byte, e Endianness) ([]uint64, []int64, error) {
	unsigned := make([]uint64, 0, len(groups))
	signed := make([]int64, 0, len(groups))
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		u, err := BytesToUint(g, e)
		if err != nil {
			return nil, nil, err
		}
		s, err := BytesToInt(g, TwosComplement, e)
		if err != nil {
			return nil, nil, err
		}
		unsigned = append(unsigned, u)
		signed = append(signed, s)
	}
	return unsigned, signed, nil
}
