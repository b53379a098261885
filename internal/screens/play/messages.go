package play

import "time"

// timerTickMsg is sent every second to drive the session countdown.
type timerTickMsg time.Time
