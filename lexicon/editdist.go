package lexicon

import "github.com/ieee0824/ust2lab-go/phoneme"

// PhonemeEditDistance counts the phoneme insertions, deletions and
// substitutions that turn a into b. lab.Compare uses it to tell how far a
// generated label file is from a reference one.
func PhonemeEditDistance(a, b phoneme.Sequence) int {
	return editDistance([]phoneme.Phoneme(a), []phoneme.Phoneme(b))
}

// editDistance is the Levenshtein distance over any comparable symbols,
// computed with two rolling rows indexed by b.
func editDistance[T comparable](a, b []T) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i, x := range a {
		cur[0] = i + 1
		for j, y := range b {
			sub := prev[j]
			if x != y {
				sub++
			}
			cur[j+1] = min(prev[j+1]+1, cur[j]+1, sub)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
