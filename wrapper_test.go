package needs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnedWrapper(t *testing.T) {
	t.Run("hands out a pointer to its copy", func(t *testing.T) {
		w, err := newOwned[testPrinter](helloPrinter{Suffix: "copy"})
		require.NoError(t, err)

		p, ok := w.get().(testPrinter)
		require.True(t, ok)
		assert.Equal(t, "Hello copy", p.Print())
		assert.Same(t, &w.value, p.(*helloPrinter))
	})

	t.Run("rejects a value that cannot stand in for the need", func(t *testing.T) {
		_, err := newOwned[testPrinter](42)
		require.ErrorIs(t, err, ErrNotAssignable)
	})

	t.Run("release tears the copy down once", func(t *testing.T) {
		w, err := newOwned[testResource](closeRecorder{name: "r"})
		require.NoError(t, err)

		require.NoError(t, w.release())
		assert.Equal(t, 1, w.value.closes)
	})

	t.Run("release without a Closer is a no-op", func(t *testing.T) {
		w, err := newOwned[testPrinter](helloPrinter{})
		require.NoError(t, err)
		assert.NoError(t, w.release())
	})
}

func TestBorrowedWrapper(t *testing.T) {
	t.Run("hands out the caller's pointer", func(t *testing.T) {
		p := &helloPrinter{Suffix: "loan"}
		w, err := newBorrowed[testPrinter](p)
		require.NoError(t, err)
		assert.Same(t, p, w.get().(*helloPrinter))
	})

	t.Run("rejects nil", func(t *testing.T) {
		_, err := newBorrowed[testPrinter]((*helloPrinter)(nil))
		require.ErrorIs(t, err, ErrNilValue)
	})

	t.Run("release never touches the value", func(t *testing.T) {
		r := &closeRecorder{name: "loan"}
		w, err := newBorrowed[testResource](r)
		require.NoError(t, err)

		require.NoError(t, w.release())
		assert.Zero(t, r.closes)
	})
}

func TestTransferredWrapper(t *testing.T) {
	t.Run("rejects nil without taking ownership", func(t *testing.T) {
		_, err := newTransferred[testResource]((*closeRecorder)(nil))
		require.ErrorIs(t, err, ErrNilValue)
	})

	t.Run("release tears the value down once", func(t *testing.T) {
		r := &closeRecorder{name: "owned"}
		w, err := newTransferred[testResource](r)
		require.NoError(t, err)

		require.NoError(t, w.release())
		assert.Equal(t, 1, r.closes)
	})

	t.Run("release propagates the teardown error", func(t *testing.T) {
		r := &closeRecorder{name: "bad", err: errors.New("close failed")}
		w, err := newTransferred[testResource](r)
		require.NoError(t, err)

		assert.ErrorIs(t, w.release(), r.err)
	})
}

func TestSharedWrapper(t *testing.T) {
	t.Run("clones its own reference", func(t *testing.T) {
		r := &closeRecorder{name: "shared"}
		h := NewShared(r)

		w, err := newSharedWrapper[testResource](h)
		require.NoError(t, err)

		// The caller's handle alone is not the last reference.
		require.NoError(t, h.Release())
		assert.Zero(t, r.closes)

		require.NoError(t, w.release())
		assert.Equal(t, 1, r.closes)
	})

	t.Run("rejects an empty handle", func(t *testing.T) {
		_, err := newSharedWrapper[testResource](NewShared[closeRecorder](nil))
		require.ErrorIs(t, err, ErrNilValue)
	})
}
