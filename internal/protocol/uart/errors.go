package uart

import "errors"

var (
	ErrInvalidDataWidth = errors.New("uart: invalid data width")
	ErrInvalidRule      = errors.New("uart: invalid rule")
	ErrInvalidBitOrder  = errors.New("uart: invalid bit order")
)
