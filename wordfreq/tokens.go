package wordfreq

import (
	"bufio"
	"io"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/indexed"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// Words enumerates the normalized words of r.
func Words(r io.Reader, opts Options) iter.Seq[string] {
	opts = opts.normalized()
	return func(yield func(string) bool) {
		linewrap := uax14.NewLineWrap()
		segmenter := segment.NewSegmenter(linewrap)
		segmenter.Init(bufio.NewReader(r))
		for segmenter.Next() {
			word, ok := normalize(string(segmenter.Bytes()), opts)
			if !ok {
				continue
			}
			if !yield(word) {
				return
			}
		}
	}
}

// normalize trims everything but letters and digits from both ends of a
// line-wrap fragment.
func normalize(frag string, opts Options) (string, bool) {
	word := strings.TrimFunc(frag, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	if utf8.RuneCountInString(word) < opts.MinLength {
		return "", false
	}
	if opts.FoldCase {
		word = strings.ToLower(word)
	}
	return word, true
}

// NewSet creates an empty word-frequency set.
func NewSet() *indexed.WeightedSet[string] {
	return indexed.NewOrderedWeightedSet[string]()
}

// Count adds the words of r to set, each occurrence adding 1 to the weight of
// a word. It returns the number of words counted. Counting stops early if
// the total weight of set is exhausted.
func Count(set *indexed.WeightedSet[string], r io.Reader, opts Options) int {
	n := 0
	for word := range Words(r, opts) {
		if err := set.Increase(word); err != nil {
			tracer().Errorf("wordfreq: %v", err)
			break
		}
		n++
	}
	return n
}

// FromText creates a word-frequency set from a plain text.
func FromText(r io.Reader, opts Options) *indexed.WeightedSet[string] {
	set := NewSet()
	n := Count(set, r, opts)
	tracer().Debugf("wordfreq: counted %d words, %d distinct", n, set.Len())
	return set
}
