package mastersys

import (
	"fmt"

	"github.com/valerio/go-mastersys/mastersys/timing"
)

// Option configures a Console at construction time.
type Option func(c *Console) error

// CartPath loads the cartridge at path.
func CartPath(path string) Option {
	return func(c *Console) error {
		return c.LoadCartridge(path)
	}
}

// Region selects an export or Japanese console, which changes what the nationalisation port reads back.
func Region(japan bool) Option {
	return func(c *Console) error {
		c.joypad.SetJapanese(japan)
		return nil
	}
}

// Frameskip renders only one frame out of every n+1.
func Frameskip(n int) Option {
	return func(c *Console) error {
		if n < 0 {
			return fmt.Errorf("invalid frameskip %d", n)
		}
		c.SetFrameskip(n)
		return nil
	}
}

// Limiter sets the frame limiter used by RunUntilFrame.
func Limiter(l timing.Limiter) Option {
	return func(c *Console) error {
		c.SetFrameLimiter(l)
		return nil
	}
}
