package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

type readResult struct {
	line string
	err  error
}

// Input reads move lines from a text stream. The stream is read by a single
// background goroutine so a blocked read can still be abandoned when ctx is done.
// Lines have no length limit. Close stops the goroutine once its current read returns.
type Input struct {
	reader *bufio.Reader
	lines  chan readResult
	done   chan struct{}

	startOnce sync.Once
	closeOnce sync.Once
}

func NewInput(reader io.Reader) *Input {
	return &Input{
		reader: bufio.NewReader(reader),
		lines:  make(chan readResult),
		done:   make(chan struct{}),
	}
}

// ReadMoveLine - returns the next line without its terminator, or io.EOF once
// the stream is exhausted or the input is closed.
func (that *Input) ReadMoveLine(ctx context.Context) (string, error) {
	that.startOnce.Do(func() {
		go that.read()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-that.done:
		return "", io.EOF
	case result, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}

		return result.line, result.err
	}
}

func (that *Input) Close() {
	that.closeOnce.Do(func() {
		close(that.done)
	})
}

func (that *Input) read() {
	defer close(that.lines)

	for {
		line, err := that.reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")

		// a last line without a terminator still counts
		if line != "" || err == nil {
			if !that.send(readResult{line: line}) {
				return
			}
		}

		if errors.Is(err, io.EOF) {
			return
		}

		if err != nil {
			that.send(readResult{err: fmt.Errorf("failed to read input: %w", err)})
			return
		}
	}
}

func (that *Input) send(result readResult) bool {
	select {
	case that.lines <- result:
		return true
	case <-that.done:
		return false
	}
}
