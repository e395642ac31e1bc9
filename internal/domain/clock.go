package domain

import "github.com/jonboulle/clockwork"

// clock stamps Dataset.LoadedAt when BuildDataset finishes a load. The reload
// endpoint and the load log line report that stamp, so tests pin it with a
// fake clock.
var clock clockwork.Clock = clockwork.NewRealClock()

// SetClock replaces the clock used for LoadedAt. A nil clock restores wall time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	clock = c
}
