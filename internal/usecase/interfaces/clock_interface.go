package interfaces

import "time"

// Clock supplies the current calendar date. The scheduling core never reads
// the system clock directly so tests can pin "today".
type Clock interface {
	Today() time.Time
}
