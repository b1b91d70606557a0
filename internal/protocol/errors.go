package protocol

import "errors"

var (
	ErrInvalidProtocol     = errors.New("protocol: invalid protocol")
	ErrUnsupportedProtocol = errors.New("protocol: unsupported protocol")
)
