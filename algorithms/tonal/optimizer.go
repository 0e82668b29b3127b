package tonal

// KeyScore pairs a key with its score over some run of chords.
type KeyScore struct {
	Key   Key
	Score int
}

// bestKeysFrom returns, for every length l in [1, len(chords)], the best
// single key for chords[:l]. Each catalog key keeps a running sum, so adding
// a chord costs one ScoreChord per key. Ties keep the earliest catalog key.
func bestKeysFrom(chords []Chord, catalog []Key) []KeyScore {
	out := make([]KeyScore, len(chords))
	if len(catalog) == 0 {
		return out
	}
	running := make([]int, len(catalog))
	for l, chord := range chords {
		best := 0
		for i, key := range catalog {
			running[i] += key.ScoreChord(chord)
			if running[i] > running[best] {
				best = i
			}
		}
		out[l] = KeyScore{Key: catalog[best], Score: running[best]}
	}
	return out
}

// IncrementalBestKeys returns the best single key for every prefix of
// chords: entry i covers chords[:i+1].
func IncrementalBestKeys(chords []Chord, catalog []Key) []KeyScore {
	return bestKeysFrom(chords, catalog)
}

// BestSingleKeys computes, for every start s, the best single key of
// chords[s:s+l] for each length l. table[s][l-1] holds that key.
// O(N² · len(catalog)).
func BestSingleKeys(chords []Chord, catalog []Key) [][]KeyScore {
	table := make([][]KeyScore, len(chords))
	for s := range chords {
		table[s] = bestKeysFrom(chords[s:], catalog)
	}
	return table
}

// BestMultipleKeys partitions chords into at most numberKeys contiguous
// ranges, each with its best single key, maximizing the total score.
//
// overall[t] holds the best segmentation of chords[:t] found so far. Each
// round lets every prefix end with one more range, like a bounded-hop
// shortest path relaxation. Because scores are non-negative, an extra range
// never lowers the total, so numberKeys rounds reach the optimum over "at
// most numberKeys ranges". Ties keep the smallest range start.
//
// numberKeys < 1 and an empty chord sequence both give the empty
// segmentation.
func BestMultipleKeys(chords []Chord, numberKeys int, catalog []Key) Segmentation {
	n := len(chords)
	if n == 0 || numberKeys < 1 || len(catalog) == 0 {
		return Segmentation{}
	}

	table := BestSingleKeys(chords, catalog)
	overall := make([]Segmentation, n+1)

	for range numberKeys {
		next := make([]Segmentation, n+1)
		for t := 1; t <= n; t++ {
			var best Segmentation
			found := false
			for start := range t {
				ks := table[start][t-start-1]
				candidate := overall[start].Extend(Range{Start: start, End: t}, ks.Key, ks.Score)
				if !found || candidate.Score() > best.Score() {
					best = candidate
					found = true
				}
			}
			next[t] = best
		}
		overall = next
	}
	return overall[n]
}
