package quickwins_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/awalter/quickwins"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := quickwins.Errorf(quickwins.EINVALID, "bad input")
		assert.Equal(t, quickwins.EINVALID, quickwins.ErrorCode(err))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("outer: %w", quickwins.Errorf(quickwins.EUNAVAILABLE, "down"))
		assert.Equal(t, quickwins.EUNAVAILABLE, quickwins.ErrorCode(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, quickwins.EINTERNAL, quickwins.ErrorCode(errors.New("boom")))
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", quickwins.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := quickwins.Errorf(quickwins.EINVALID, "invalid domain: %q", "x")
		assert.Equal(t, `invalid domain: "x"`, quickwins.ErrorMessage(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Internal error.", quickwins.ErrorMessage(errors.New("boom")))
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", quickwins.ErrorMessage(nil))
	})
}
