package hal

import "time"

type monoClock struct {
	start time.Time
}

func newMonoClock() *monoClock {
	return &monoClock{start: time.Now()}
}

func (c *monoClock) Millis() uint64 {
	return uint64(time.Since(c.start) / time.Millisecond)
}
