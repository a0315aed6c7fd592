package memory

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

const (
	// headerSize is the size of the copier header some dumps carry in front of the ROM.
	headerSize = 512
)

var (
	// ErrCartridgeNotFound is returned when the cartridge file does not exist.
	ErrCartridgeNotFound = errors.New("cartridge not found")
	// ErrEmptyCartridge is returned for an image with no ROM data.
	ErrEmptyCartridge = errors.New("cartridge image is empty")
)

// LoadError describes a cartridge file that exists but could not be read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading cartridge %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Cartridge holds a raw ROM image cut to a whole number of 16KB pages. Images smaller than one page are padded.
type Cartridge struct {
	data          []byte
	pages         int
	headerSkipped bool
	name          string
}

// NewCartridge creates a cartridge from a raw image. A size that is not a multiple of 16KB means
// the image carries a 512 byte header, which is dropped.
func NewCartridge(image []byte) (*Cartridge, error) {
	if len(image) == 0 {
		return nil, ErrEmptyCartridge
	}

	skip := len(image)%pageSize != 0 && len(image) > headerSize
	if skip {
		image = image[headerSize:]
	}

	pages := max(len(image)/pageSize, 1)
	cart := &Cartridge{
		data:          make([]byte, pages*pageSize),
		pages:         pages,
		headerSkipped: skip,
	}
	copy(cart.data, image)

	return cart, nil
}

// LoadCartridge reads a cartridge image from disk.
func LoadCartridge(path string) (*Cartridge, error) {
	image, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCartridgeNotFound, path)
		}
		return nil, &LoadError{Path: path, Err: err}
	}

	cart, err := NewCartridge(image)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	cart.name = path

	slog.Info("Loaded cartridge", "path", path, "size", len(image), "pages", cart.pages, "header_skipped", cart.headerSkipped)

	return cart, nil
}

// Pages returns the number of 16KB pages in the ROM.
func (c *Cartridge) Pages() int {
	return c.pages
}

// HeaderSkipped reports whether a 512 byte header was dropped at load time.
func (c *Cartridge) HeaderSkipped() bool {
	return c.headerSkipped
}

// Name returns the path the cartridge was loaded from, empty for in-memory images.
func (c *Cartridge) Name() string {
	return c.name
}

// Data returns the ROM bytes, header removed.
func (c *Cartridge) Data() []byte {
	return c.data
}
