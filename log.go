package hostname

import (
	"io"
	"sync/atomic"

	"github.com/rs/zerolog"
)

func init() {
	l := zerolog.New(io.Discard)
	Logger.Store(&l)
}

// Logger is used by the input readers and the file watcher. It discards
// everything until a command stores its own logger. IsValid never logs.
var Logger atomic.Pointer[zerolog.Logger]
