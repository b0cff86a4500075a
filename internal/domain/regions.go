package domain

import "sort"

// computeRegions partitions each color's pieces into maximal 8-connected
// clusters and caches the sorted size lists. The flood fill runs on an
// explicit worklist rather than the call stack.
func (b *Board) computeRegions() {
	if b.regionsValid {
		return
	}
	b.whiteRegions = b.whiteRegions[:0]
	b.blackRegions = b.blackRegions[:0]

	var visited [BoardSize * BoardSize]bool
	for c := 0; c < BoardSize; c++ {
		for r := 0; r < BoardSize; r++ {
			sq := Sq(c, r)
			p := b.cells[sq]
			if p == Empty || visited[sq] {
				continue
			}
			size := b.fillCluster(sq, p, &visited)
			if p == White {
				b.whiteRegions = append(b.whiteRegions, size)
			} else {
				b.blackRegions = append(b.blackRegions, size)
			}
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(b.whiteRegions)))
	sort.Sort(sort.Reverse(sort.IntSlice(b.blackRegions)))
	b.regionsValid = true
}

// fillCluster counts the unvisited cluster of p-pieces containing sq,
// marking every member visited.
func (b *Board) fillCluster(sq Square, p Piece, visited *[BoardSize * BoardSize]bool) int {
	count := 0
	work := []Square{sq}
	visited[sq] = true
	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]
		count++
		for _, adj := range cur.Adjacent() {
			if b.cells[adj] == p && !visited[adj] {
				visited[adj] = true
				work = append(work, adj)
			}
		}
	}
	return count
}

// regionSizes returns side's cached size list. The slice aliases the
// cache and is rewritten in place on the next recomputation.
func (b *Board) regionSizes(side Piece) []int {
	b.computeRegions()
	if side == White {
		return b.whiteRegions
	}
	return b.blackRegions
}

// RegionSizes returns side's cluster sizes in descending order. The
// slice is the caller's to keep; it does not alias the cache.
func (b *Board) RegionSizes(side Piece) []int {
	return append([]int(nil), b.regionSizes(side)...)
}

// PiecesContiguous reports whether all of side's pieces form a single
// cluster. A lone piece counts as one cluster of size 1.
func (b *Board) PiecesContiguous(side Piece) bool {
	return len(b.regionSizes(side)) == 1
}

// CountPieces returns the number of side's pieces on the board.
func (b *Board) CountPieces(side Piece) int {
	total := 0
	for _, size := range b.regionSizes(side) {
		total += size
	}
	return total
}
