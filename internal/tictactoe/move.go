package tictactoe

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// ParseMove - reads "row col" as two whitespace-separated non-negative integers.
// Board bounds are not checked here, see validateMove; only numbers too large
// to represent are reported as ErrOutOfRangeMove.
func ParseMove(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: expected 2 numbers, got %d", apperror.ErrMalformedInput, len(fields))
	}

	row, err := parseCoordinate(fields[0])
	if err != nil {
		return 0, 0, err
	}

	col, err := parseCoordinate(fields[1])
	if err != nil {
		return 0, 0, err
	}

	return row, col, nil
}

// parseCoordinate - a single leading '+' is allowed, a '-' never is.
func parseCoordinate(token string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(token, "+"), 10, 31)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %s", apperror.ErrOutOfRangeMove, token)
	}

	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a non-negative number", apperror.ErrMalformedInput, token)
	}

	return int(n), nil
}

// validateMove - checks that the parsed coordinates are on the board.
func validateMove(row, col int) error {
	if !entity.InBounds(row, col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfRangeMove, row, col)
	}

	return nil
}
