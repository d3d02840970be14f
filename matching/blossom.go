package matching

// leaves appends the vertices contained in blossom b (recursively) to out.
func (s *solver) leaves(b int, out []int) []int {
	if b < s.nv {
		return append(out, b)
	}
	for _, t := range s.blossomChildren[b] {
		out = s.leaves(t, out)
	}

	return out
}

// cyclic returns xs[j] with Python-style wrap-around for negative j.
func cyclic(xs []int, j int) int {
	n := len(xs)

	return xs[((j%n)+n)%n]
}

// position returns the index of x in xs.
func position(xs []int, x int) int {
	for i, y := range xs {
		if y == x {
			return i
		}
	}
	invariant(false, "child %d not found in blossom", x)

	return -1
}

// rotate returns a new slice holding xs[i:] followed by xs[:i].
func rotate(xs []int, i int) []int {
	out := make([]int, 0, len(xs))
	out = append(out, xs[i:]...)

	return append(out, xs[:i]...)
}

// assignLabel labels the top-level blossom containing w with t, reached
// through endpoint p. An S-blossom's vertices are queued; a T-blossom's mate
// is labelled S in turn.
func (s *solver) assignLabel(w int, t label, p int) {
	b := s.inBlossom[w]
	invariant(s.label[w] == labelFree && s.label[b] == labelFree,
		"assignLabel(%d): vertex or blossom %d already labelled", w, b)

	s.label[w], s.label[b] = t, t
	s.labelEnd[w], s.labelEnd[b] = p, p
	s.bestEdge[w], s.bestEdge[b] = noVertex, noVertex

	switch t {
	case labelS:
		s.queue = s.leaves(b, s.queue)
	case labelT:
		base := s.blossomBase[b]
		invariant(s.mate[base] != noVertex, "T-blossom %d has exposed base %d", b, base)
		s.assignLabel(s.endpoint[s.mate[base]], labelS, s.mate[base]^1)
	}
}

// scanBlossom traces back from S-vertices v and w towards their tree roots.
// It returns the base of the first common blossom (a new blossom is found),
// or noVertex when the two paths reach different roots (augmenting path).
func (s *solver) scanBlossom(v, w int) int {
	var path []int
	base := noVertex

	for v != noVertex || w != noVertex {
		b := s.inBlossom[v]
		if s.label[b]&labelCrumb != 0 {
			base = s.blossomBase[b]
			break
		}
		invariant(s.label[b] == labelS, "scanBlossom: blossom %d is not S", b)
		path = append(path, b)
		s.label[b] = labelS | labelCrumb

		if s.labelEnd[b] == noVertex {
			// b's base is a root
			v = noVertex
		} else {
			v = s.endpoint[s.labelEnd[b]]
			b = s.inBlossom[v]
			invariant(s.label[b] == labelT, "scanBlossom: blossom %d is not T", b)
			v = s.endpoint[s.labelEnd[b]]
		}

		// alternate between the two paths
		if w != noVertex {
			v, w = w, v
		}
	}

	for _, b := range path {
		s.label[b] = labelS
	}

	return base
}

// addBlossom contracts the odd cycle closed by edge k, whose lowest common
// ancestor in the alternating tree has base vertex base, into a new S-blossom.
func (s *solver) addBlossom(base, k int) {
	v, w := s.edges[k].U, s.edges[k].V
	bb := s.inBlossom[base]
	bv := s.inBlossom[v]
	bw := s.inBlossom[w]

	invariant(len(s.unused) > 0, "blossom arena exhausted")
	b := s.unused[len(s.unused)-1]
	s.unused = s.unused[:len(s.unused)-1]

	s.blossomBase[b] = base
	s.blossomParent[b] = noVertex
	s.blossomParent[bb] = b

	// walk from v's side back to the base, then reverse
	var children, endps []int
	for bv != bb {
		s.blossomParent[bv] = b
		children = append(children, bv)
		endps = append(endps, s.labelEnd[bv])
		invariant(s.labelEnd[bv] >= 0, "addBlossom: blossom %d has no label endpoint", bv)
		v = s.endpoint[s.labelEnd[bv]]
		bv = s.inBlossom[v]
	}
	children = append(children, bb)
	reverseInts(children)
	reverseInts(endps)
	endps = append(endps, 2*k)

	// then from w's side forward to the base
	for bw != bb {
		s.blossomParent[bw] = b
		children = append(children, bw)
		endps = append(endps, s.labelEnd[bw]^1)
		invariant(s.labelEnd[bw] >= 0, "addBlossom: blossom %d has no label endpoint", bw)
		w = s.endpoint[s.labelEnd[bw]]
		bw = s.inBlossom[w]
	}

	invariant(s.label[bb] == labelS, "addBlossom: base blossom %d is not S", bb)
	s.blossomChildren[b] = children
	s.blossomEndpoints[b] = endps
	s.label[b] = labelS
	s.labelEnd[b] = s.labelEnd[bb]
	s.dual[b] = 0

	// former T-vertices become S and need scanning
	for _, lv := range s.leaves(b, nil) {
		if s.label[s.inBlossom[lv]] == labelT {
			s.queue = append(s.queue, lv)
		}
		s.inBlossom[lv] = b
	}

	// merge the children's least-slack edge lists into one for b
	bestEdgeTo := make([]int, 2*s.nv)
	for i := range bestEdgeTo {
		bestEdgeTo[i] = noVertex
	}
	for _, child := range children {
		var lists [][]int
		if s.blossomBestEdges[child] == nil {
			for _, lv := range s.leaves(child, nil) {
				ks := make([]int, len(s.neighbend[lv]))
				for i, p := range s.neighbend[lv] {
					ks[i] = p / 2
				}
				lists = append(lists, ks)
			}
		} else {
			lists = [][]int{s.blossomBestEdges[child]}
		}

		for _, ks := range lists {
			for _, kk := range ks {
				j := s.edges[kk].V
				if s.inBlossom[j] == b {
					j = s.edges[kk].U
				}
				bj := s.inBlossom[j]
				if bj != b && s.label[bj] == labelS &&
					(bestEdgeTo[bj] == noVertex || s.slack(kk) < s.slack(bestEdgeTo[bj])) {
					bestEdgeTo[bj] = kk
				}
			}
		}
		s.blossomBestEdges[child] = nil
		s.bestEdge[child] = noVertex
	}

	best := make([]int, 0, len(children))
	for _, kk := range bestEdgeTo {
		if kk != noVertex {
			best = append(best, kk)
		}
	}
	s.blossomBestEdges[b] = best
	s.bestEdge[b] = noVertex
	for _, kk := range best {
		if s.bestEdge[b] == noVertex || s.slack(kk) < s.slack(s.bestEdge[b]) {
			s.bestEdge[b] = kk
		}
	}
}

// expandBlossom dissolves blossom b into its children. During a stage
// (endStage == false) a T-blossom is expanded because its dual hit zero, and
// the children on the even path from the entry child to the base are relabelled
// alternately T and S. At the end of a stage zero-dual S-blossoms are expanded
// recursively and no labels are touched.
func (s *solver) expandBlossom(b int, endStage bool) {
	for _, sub := range s.blossomChildren[b] {
		s.blossomParent[sub] = noVertex
		switch {
		case sub < s.nv:
			s.inBlossom[sub] = sub
		case endStage && s.dual[sub] == 0:
			s.expandBlossom(sub, endStage)
		default:
			for _, lv := range s.leaves(sub, nil) {
				s.inBlossom[lv] = sub
			}
		}
	}

	if !endStage && s.label[b] == labelT {
		s.relabelExpandedT(b)
	}

	// recycle the id
	s.label[b] = labelFree
	s.labelEnd[b] = noVertex
	s.blossomChildren[b] = nil
	s.blossomEndpoints[b] = nil
	s.blossomBase[b] = noVertex
	s.blossomBestEdges[b] = nil
	s.bestEdge[b] = noVertex
	s.unused = append(s.unused, b)
}

// relabelExpandedT restores the alternating tree through the children of the
// T-blossom b that was just expanded.
func (s *solver) relabelExpandedT(b int) {
	children := s.blossomChildren[b]
	endps := s.blossomEndpoints[b]

	invariant(s.labelEnd[b] >= 0, "expanded T-blossom %d has no label endpoint", b)
	entryChild := s.inBlossom[s.endpoint[s.labelEnd[b]^1]]

	// walk from the entry child to the base along the even-length side
	j := position(children, entryChild)
	var jstep, endptrick int
	if j&1 != 0 {
		j -= len(children)
		jstep, endptrick = 1, 0
	} else {
		jstep, endptrick = -1, 1
	}

	p := s.labelEnd[b]
	for j != 0 {
		// relabel the T-sub-blossom and its S partner
		s.label[s.endpoint[p^1]] = labelFree
		s.label[s.endpoint[cyclic(endps, j-endptrick)^endptrick^1]] = labelFree
		s.assignLabel(s.endpoint[p^1], labelT, p)
		// the edges along the path are tight
		s.allowEdge[cyclic(endps, j-endptrick)/2] = true
		j += jstep
		p = cyclic(endps, j-endptrick) ^ endptrick
		s.allowEdge[p/2] = true
		j += jstep
	}

	// the base child becomes T without relabelling its mate
	bv := cyclic(children, j)
	s.label[s.endpoint[p^1]], s.label[bv] = labelT, labelT
	s.labelEnd[s.endpoint[p^1]], s.labelEnd[bv] = p, p
	s.bestEdge[bv] = noVertex

	// children on the odd side keep no label unless one of their vertices was
	// reached from outside; those vertices become T again
	j += jstep
	for cyclic(children, j) != entryChild {
		bv = cyclic(children, j)
		if s.label[bv] == labelS {
			// already relabelled through its neighbour in the path
			j += jstep
			continue
		}

		reached := noVertex
		for _, lv := range s.leaves(bv, nil) {
			if s.label[lv] != labelFree {
				reached = lv
				break
			}
		}
		if reached != noVertex {
			invariant(s.label[reached] == labelT, "vertex %d in expanded child %d is not T", reached, bv)
			invariant(s.inBlossom[reached] == bv, "vertex %d is not in child %d", reached, bv)
			s.label[reached] = labelFree
			s.label[s.endpoint[s.mate[s.blossomBase[bv]]]] = labelFree
			s.assignLabel(reached, labelT, s.labelEnd[reached])
		}
		j += jstep
	}
}

// augmentBlossom swaps matched and unmatched edges along the even path from
// vertex v to the base of blossom b, then rotates b so that v's child is first
// and v becomes the new base.
func (s *solver) augmentBlossom(b, v int) {
	// the child of b that contains v
	t := v
	for s.blossomParent[t] != b {
		t = s.blossomParent[t]
	}
	if t >= s.nv {
		s.augmentBlossom(t, v)
	}

	children := s.blossomChildren[b]
	endps := s.blossomEndpoints[b]

	i := position(children, t)
	j := i
	var jstep, endptrick int
	if i&1 != 0 {
		j -= len(children)
		jstep, endptrick = 1, 0
	} else {
		jstep, endptrick = -1, 1
	}

	for j != 0 {
		j += jstep
		t = cyclic(children, j)
		p := cyclic(endps, j-endptrick) ^ endptrick
		if t >= s.nv {
			s.augmentBlossom(t, s.endpoint[p])
		}
		j += jstep
		t = cyclic(children, j)
		if t >= s.nv {
			s.augmentBlossom(t, s.endpoint[p^1])
		}
		// match the edge joining the two children
		s.mate[s.endpoint[p]] = p ^ 1
		s.mate[s.endpoint[p^1]] = p
	}

	s.blossomChildren[b] = rotate(children, i)
	s.blossomEndpoints[b] = rotate(endps, i)
	s.blossomBase[b] = s.blossomBase[s.blossomChildren[b][0]]
	invariant(s.blossomBase[b] == v, "augmentBlossom: base %d, want %d", s.blossomBase[b], v)
}

// augmentMatching flips the augmenting path through edge k, walking from each
// endpoint back to the root of its alternating tree.
func (s *solver) augmentMatching(k int) {
	e := s.edges[k]
	starts := [2][2]int{{e.U, 2*k + 1}, {e.V, 2 * k}}

	for _, sp := range starts {
		v, p := sp[0], sp[1]
		for {
			bs := s.inBlossom[v]
			invariant(s.label[bs] == labelS, "augment: blossom %d is not S", bs)
			if bs >= s.nv {
				s.augmentBlossom(bs, v)
			}
			s.mate[v] = p

			if s.labelEnd[bs] == noVertex {
				// reached the exposed root
				break
			}

			t := s.endpoint[s.labelEnd[bs]]
			bt := s.inBlossom[t]
			invariant(s.label[bt] == labelT, "augment: blossom %d is not T", bt)
			invariant(s.labelEnd[bt] >= 0, "augment: T-blossom %d has no label endpoint", bt)

			v = s.endpoint[s.labelEnd[bt]]
			j := s.endpoint[s.labelEnd[bt]^1]
			invariant(s.blossomBase[bt] == t, "augment: T-blossom %d base %d, want %d", bt, s.blossomBase[bt], t)
			if bt >= s.nv {
				s.augmentBlossom(bt, j)
			}
			s.mate[j] = s.labelEnd[bt]
			p = s.labelEnd[bt] ^ 1
		}
	}
}

func reverseInts(xs []int) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}
