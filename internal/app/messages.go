package app

import "time"

// TickMsg advances the animation clock by one frame.
type TickMsg time.Time
