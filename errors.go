package ili9342c

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned by New for unsupported dimensions or a
	// missing DC pin.
	ErrConfiguration = errors.New("ili9342c: invalid configuration")
	// ErrRange is returned when a bitmap frame index is out of range.
	ErrRange = errors.New("ili9342c: index out of range")
	// ErrResource is returned when scratch memory cannot be provided.
	ErrResource = errors.New("ili9342c: resource unavailable")
	// ErrBufferTooSmall is returned when the resident buffer cannot hold what
	// an operation needs. It wraps ErrResource.
	ErrBufferTooSmall = fmt.Errorf("%w: buffer too small", ErrResource)
	// ErrDecode is returned when a JPEG cannot be prepared or decompressed.
	ErrDecode = errors.New("ili9342c: jpeg decode failed")
)
