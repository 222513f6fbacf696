package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lekma/mood.ippc/errs"
)

func TestRegister_LookupRoundTrip(t *testing.T) {
	r := New()

	require.NoError(t, r.Register("id-1", "handle-1"))

	h, ok := r.Lookup("id-1")
	require.True(t, ok)
	require.Equal(t, "handle-1", h)
}

func TestRegister_Idempotent(t *testing.T) {
	r := New()

	require.NoError(t, r.Register("id-1", "handle-1"))
	require.NoError(t, r.Register("id-1", "handle-1"))
	require.Equal(t, 1, r.Len())
}

func TestRegister_ConflictRejected(t *testing.T) {
	r := New()

	require.NoError(t, r.Register("id-1", "handle-1"))

	err := r.Register("id-1", "handle-2")
	require.ErrorIs(t, err, errs.ErrAlreadyRegistered)

	h, _ := r.Lookup("id-1")
	require.Equal(t, "handle-1", h, "conflicting registration must not overwrite")
}

func TestLookup_Missing(t *testing.T) {
	r := New()

	_, ok := r.Lookup("nope")
	require.False(t, ok)
}

func TestMustRegister_PanicsOnConflict(t *testing.T) {
	r := New()
	r.MustRegister("id-1", "handle-1")

	require.Panics(t, func() {
		r.MustRegister("id-1", "handle-2")
	})
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := New()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			id := "id"
			_ = r.Register(id, "handle") // same key/handle from every goroutine: idempotent
			_, _ = r.Lookup(id)
			_ = i
		}(i)
	}

	wg.Wait()
	require.Equal(t, 1, r.Len())
}
