//go:build !sdl2

package sdl2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-mastersys/mastersys/backend"
)

func TestStubReportsUnavailable(t *testing.T) {
	var b backend.Backend = New()

	assert.ErrorIs(t, b.Init(backend.BackendConfig{Title: "Test"}), ErrUnavailable)
	_, err := b.Update(nil)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NoError(t, b.Cleanup())
}
