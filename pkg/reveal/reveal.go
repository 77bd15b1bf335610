// Package reveal replays an already computed arrangement one unit at a time. It only paces the disclosure of
// results; it never runs or alters the partitioning itself
package reveal

import (
	"context"
	"time"
)

// Replay calls step for every index in [0, units) waiting interval between consecutive calls. The first unit is
// disclosed immediately. It returns ctx.Err() if the context is cancelled before every unit has been disclosed
func Replay(ctx context.Context, units int, interval time.Duration, step func(index int)) error {
	if units <= 0 {
		return nil
	}
	if interval <= 0 {
		for index := range units {
			if err := ctx.Err(); err != nil {
				return err
			}
			step(index)
		}
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for index := range units {
		if index > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		step(index)
	}
	return nil
}
