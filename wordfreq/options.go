package wordfreq

// Options control tokenization and loading.
type Options struct {
	// MinLength is the minimum number of runes of a word to be counted.
	MinLength int
	// FoldCase lower-cases words before counting.
	FoldCase bool
	// FragSize is the size of the fragments a file is read in. 0 lets Load
	// choose a size depending on the file size.
	FragSize int64
}

// DefaultOptions counts words of any length, case-insensitively.
func DefaultOptions() Options {
	return Options{
		MinLength: 1,
		FoldCase:  true,
	}
}

func (opts Options) normalized() Options {
	if opts.MinLength < 1 {
		opts.MinLength = 1
	}
	if opts.FragSize < 0 {
		opts.FragSize = 0
	}
	return opts
}
