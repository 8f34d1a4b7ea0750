package wordfreq

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/indexed"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// fragment is a chunk of a file's content, read at position pos.
type fragment struct {
	pos     int64
	content []byte
}

// Loader counts the words of a text file in the background.
//
// A reader goroutine reads the file fragment by fragment and hands the
// fragments to a broadcaster. A single subscriber goroutine counts the words
// of the fragments; it is the only writer of the resulting set.
type Loader struct {
	path     string
	info     os.FileInfo
	file     *os.File
	fragSize int64
	opts     Options
	cast     *caster.Caster // broadcaster for loaded fragments
	set      *indexed.WeightedSet[string]
	words    int
	done     chan struct{} // closed when the counter has finished
	errc     chan error    // result of the reader
}

// Load opens a file, which must be a text file, and starts counting its
// words asynchronously. Opening the file is done synchronously, errors in
// doing so are returned immediately.
//
// Clients call Wait to receive the result. Cancelling ctx stops reading the
// file; Wait will then report the context's error together with the words
// counted up to that point.
func Load(ctx context.Context, name string, opts Options) (*Loader, error) {
	opts = opts.normalized()
	l, err := openFile(name)
	if err != nil {
		tracer().Errorf("wordfreq: %v", err)
		return nil, err
	}
	l.opts = opts
	l.fragSize = fragmentSize(l.info.Size(), opts.FragSize)
	tracer().Debugf("wordfreq: loading %s (%d bytes) in fragments of %d bytes",
		name, l.info.Size(), l.fragSize)
	sub, ok := l.cast.Sub(context.Background(), 4)
	if !ok {
		l.file.Close()
		return nil, fmt.Errorf("wordfreq: cannot subscribe to fragments of %s", name)
	}
	frags := make(chan fragment)
	go l.count(sub)
	go func(ch <-chan fragment) {
		// publish loaded fragments to the counter
		defer l.cast.Close()
		for f := range ch {
			l.cast.Pub(f)
		}
	}(frags)
	go l.read(ctx, frags)
	return l, nil
}

// Wait blocks until the file has been processed and returns the
// word-frequency set.
func (l *Loader) Wait() (*indexed.WeightedSet[string], error) {
	<-l.done
	err := <-l.errc
	l.errc <- err // keep the result for repeated calls
	return l.set, err
}

// Path returns the name of the file being loaded.
func (l *Loader) Path() string {
	return l.path
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*Loader, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("wordfreq: %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	l := &Loader{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil), // we will broadcast messages when fragments are loaded
		set:  NewSet(),
		done: make(chan struct{}),
		errc: make(chan error, 1),
	}
	return l, nil
}

// fragmentSize chooses a fragment size for a file of a given size, unless
// the client requested one.
func fragmentSize(size int64, requested int64) int64 {
	if requested > 0 {
		return requested
	}
	switch {
	case size < 64:
		return 64
	case size < 1024:
		return 256
	case size < tenKb:
		return 1024
	case size < hundredKb:
		return twoKb
	case size < oneMb:
		return sixKb
	}
	return 4 * sixKb
}

// read iterates over the file and sends fragments of text to ch.
func (l *Loader) read(ctx context.Context, ch chan<- fragment) {
	defer close(ch)
	defer l.file.Close()
	size := l.info.Size()
	for pos := int64(0); pos < size; pos += l.fragSize {
		buf := make([]byte, min(l.fragSize, size-pos))
		cnt, err := l.file.ReadAt(buf, pos)
		if err != nil && err != io.EOF {
			l.errc <- fmt.Errorf("wordfreq: error loading text fragment: %w", err)
			return
		} else if int64(cnt) < int64(len(buf)) {
			l.errc <- fmt.Errorf("wordfreq: not all bytes loaded for fragment at %d", pos)
			return
		}
		select {
		case ch <- fragment{pos: pos, content: buf}:
		case <-ctx.Done():
			l.errc <- ctx.Err()
			return
		}
	}
	l.errc <- nil
}

// count is the single writer of l.set. Words may be split between fragments,
// so the text after the last whitespace of a fragment is carried over to the
// next one.
func (l *Loader) count(sub <-chan interface{}) {
	defer close(l.done)
	var carry []byte
	for msg := range sub {
		f, ok := msg.(fragment)
		if !ok {
			continue
		}
		data := append(carry, f.content...)
		cut := bytes.LastIndexAny(data, " \t\r\n\f\v")
		if cut < 0 {
			carry = data
			continue
		}
		l.words += Count(l.set, bytes.NewReader(data[:cut+1]), l.opts)
		carry = append([]byte(nil), data[cut+1:]...)
	}
	if len(carry) > 0 {
		l.words += Count(l.set, bytes.NewReader(carry), l.opts)
	}
	tracer().Debugf("wordfreq: %s: counted %d words, %d distinct", l.path, l.words, l.set.Len())
}
