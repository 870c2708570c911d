package picker

import (
	"context"
	"time"
)

// Run shows the initial colour and then steps until ctx is done. It returns
// nil on cancellation and the first output error otherwise.
func (p *Picker) Run(ctx context.Context) error {
	if err := p.Init(); err != nil {
		return err
	}

	if p.opts.Interval <= 0 {
		for {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			if _, err := p.Step(); err != nil {
				return err
			}
		}
	}

	ticker := time.NewTicker(p.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := p.Step(); err != nil {
				return err
			}

		case <-ctx.Done():
			p.log.Debug().Str("hex", p.color.Hex()).Msg("stopped")
			return nil
		}
	}
}
