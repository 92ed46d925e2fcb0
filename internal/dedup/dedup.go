// Package dedup groups images whose perceptual fingerprints fall within a
// Hamming distance threshold. It is deliberately a plain pairwise pass, not a
// nearest-neighbour index: collections small enough for a CLI scan do not
// justify one.
package dedup

import "github.com/imgprint/imgprint/internal/imghash"

// Entry pairs an image path with its computed fingerprint.
type Entry struct {
	Path string
	Hash *imghash.ImageHash
}

// Group is a set of entries considered near-duplicates of each other.
type Group []Entry

// Find clusters entries whose hashes are within threshold Hamming distance of
// each other. Matching is transitive: if a matches b and b matches c, all
// three end up in one group. Only groups with at least two members are
// returned, ordered by the first appearance of any member. Entries with
// mismatched hash shapes never match.
func Find(entries []Entry, threshold int) []Group {
	parent := make([]int, len(entries))
	for i := range parent {
		parent[i] = i
	}
	var root func(int) int
	root = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}

	for i := range entries {
		for j := i + 1; j < len(entries); j++ {
			similar, err := entries[i].Hash.Similar(entries[j].Hash, threshold)
			if err != nil {
				// Differently shaped hashes are simply not comparable.
				continue
			}
			if similar {
				parent[root(j)] = root(i)
			}
		}
	}

	byRoot := make(map[int]int)
	var groups []Group
	for i, entry := range entries {
		r := root(i)
		idx, ok := byRoot[r]
		if !ok {
			idx = len(groups)
			byRoot[r] = idx
			groups = append(groups, nil)
		}
		groups[idx] = append(groups[idx], entry)
	}

	var result []Group
	for _, g := range groups {
		if len(g) > 1 {
			result = append(result, g)
		}
	}
	return result
}
