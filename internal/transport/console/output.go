package console

import (
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Output writes boards and status lines to a text stream. The first write
// error is kept and every later write is skipped.
type Output struct {
	writer io.Writer
	err    error
}

func NewOutput(writer io.Writer) *Output {
	return &Output{writer: writer}
}

func (that *Output) Render(board *entity.Board) {
	that.write(board.String())
}

func (that *Output) Message(text string) {
	that.write(text + "\n")
}

func (that *Output) Err() error {
	return that.err
}

func (that *Output) write(text string) {
	if that.err != nil {
		return
	}

	if _, err := io.WriteString(that.writer, text); err != nil {
		that.err = fmt.Errorf("failed to write output: %w", err)
	}
}
