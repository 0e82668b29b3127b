package tonal

import (
	"fmt"
	"sort"
	"strings"
)

// Range is a half-open interval [Start, End) of chunk indices.
type Range struct {
	Start int
	End   int
}

// Len returns the number of chunks in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// Segment is one keyed range of a Segmentation.
type Segment struct {
	Range Range
	Key   Key
	Score int
}

// segmentNode is one link of a persistent list. Nodes are never modified
// after creation, so several segmentations can share a prefix.
type segmentNode struct {
	prev    *segmentNode
	segment Segment
	total   int
	count   int
}

// Segmentation assigns keys to contiguous chunk ranges. It is an immutable
// value: Extend returns a new Segmentation and leaves the receiver intact,
// which the optimizer depends on when it reads the previous round while
// building the next. The zero value is the empty segmentation.
type Segmentation struct {
	last *segmentNode
}

// Extend returns a copy of s with one more keyed range.
func (s Segmentation) Extend(r Range, key Key, score int) Segmentation {
	node := &segmentNode{
		prev:    s.last,
		segment: Segment{Range: r, Key: key, Score: score},
		total:   score,
		count:   1,
	}
	if s.last != nil {
		node.total += s.last.total
		node.count += s.last.count
	}
	return Segmentation{last: node}
}

// Score is the sum of the per-range scores.
func (s Segmentation) Score() int {
	if s.last == nil {
		return 0
	}
	return s.last.total
}

// Len returns the number of ranges.
func (s Segmentation) Len() int {
	if s.last == nil {
		return 0
	}
	return s.last.count
}

// IsEmpty reports whether no key was assigned. Callers treat this as "no
// key identified", not as an error.
func (s Segmentation) IsEmpty() bool {
	return s.last == nil
}

// Segments returns the ranges ordered by start.
func (s Segmentation) Segments() []Segment {
	out := make([]Segment, s.Len())
	i := len(out) - 1
	for n := s.last; n != nil; n = n.prev {
		out[i] = n.segment
		i--
	}
	// Ranges are appended left to right by the optimizer, but Extend accepts
	// any order.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Range.Start < out[j].Range.Start
	})
	return out
}

// Covers reports whether the ranges, sorted by start, tile [0, n) exactly.
func (s Segmentation) Covers(n int) bool {
	next := 0
	for _, seg := range s.Segments() {
		if seg.Range.Start != next || seg.Range.End <= seg.Range.Start {
			return false
		}
		next = seg.Range.End
	}
	return next == n
}

func (s Segmentation) String() string {
	var sb strings.Builder
	sb.WriteString("Segmentation{")
	for i, seg := range s.Segments() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %s %d", seg.Range, seg.Key, seg.Score)
	}
	fmt.Fprintf(&sb, "; score %d}", s.Score())
	return sb.String()
}
