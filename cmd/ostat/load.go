package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/indexed"
	"github.com/npillmayer/indexed/wordfreq"
)

func options() wordfreq.Options {
	return wordfreq.Options{
		MinLength: minLength,
		FoldCase:  !caseSens,
		FragSize:  fragSize,
	}
}

// loadWords counts the words of all files into a single set. Plain text
// files are loaded concurrently.
func loadWords(ctx context.Context, files []string) (*indexed.WeightedSet[string], error) {
	if len(files) == 0 {
		return nil, errors.New("at least one file is required")
	}
	opts := options()
	total := wordfreq.NewSet()
	var loaders []*wordfreq.Loader
	for _, name := range files {
		if asHTML || isHTML(name) {
			set, err := loadHTML(name, opts)
			if err != nil {
				return nil, err
			}
			if err := merge(total, set); err != nil {
				return nil, err
			}
			continue
		}
		l, err := wordfreq.Load(ctx, name, opts)
		if err != nil {
			return nil, err
		}
		loaders = append(loaders, l)
	}
	for _, l := range loaders {
		set, err := l.Wait()
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", l.Path(), err)
		}
		if err := merge(total, set); err != nil {
			return nil, err
		}
	}
	return total, nil
}

func isHTML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".html" || ext == ".htm"
}

func loadHTML(name string, opts wordfreq.Options) (*indexed.WeightedSet[string], error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return wordfreq.FromHTML(f, opts)
}

func merge(dst, src *indexed.WeightedSet[string]) error {
	for word, count := range src.Entries() {
		if err := dst.Add(word, count); err != nil {
			return err
		}
	}
	return nil
}
