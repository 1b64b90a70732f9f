package similarity

import (
	"sync"

	"github.com/partscout/partscout/pkg/resolve"
)

var (
	defaultOnce sync.Once
	defaultEng  *Engine
)

func defaultEngine() *Engine {
	defaultOnce.Do(func() {
		defaultEng = New(resolve.Default())
	})
	return defaultEng
}
