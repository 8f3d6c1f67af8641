package drill

import "github.com/Jun-ho-Kim-ops/chinese-slang-app/internal/catalog"

// deckReadyMsg carries the loaded drill deck or the load error.
type deckReadyMsg struct {
	Cards []catalog.DrillCard
	Err   error
}

// spokeMsg reports the outcome of a pronunciation attempt.
type spokeMsg struct {
	Err error
}
