package session

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/editor"
	"github.com/jonathan/cv-builder/internal/types"
)

func newTestStore(idle time.Duration) *Store {
	return NewStore(idle, slog.New(slog.DiscardHandler))
}

func TestStore_CreateGetDelete(t *testing.T) {
	st := newTestStore(time.Hour)

	s := st.Create()
	require.NotEmpty(t, s.ID)
	assert.Equal(t, 1, st.Len())

	got, err := st.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	require.NoError(t, st.Delete(s.ID))
	assert.Equal(t, 0, st.Len())

	_, err = st.Get(s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, st.Delete(s.ID), ErrSessionNotFound)
}

func TestStore_SessionsAreIndependent(t *testing.T) {
	st := newTestStore(time.Hour)
	a, b := st.Create(), st.Create()
	require.NotEqual(t, a.ID, b.ID)

	require.NoError(t, a.Do(func(e *editor.Editor) error {
		return e.SetPersonalInfo(types.PersonalInfo{FullName: "Ada Lovelace", Email: "ada@example.com"})
	}))

	require.NoError(t, b.Do(func(e *editor.Editor) error {
		assert.False(t, e.Document().HasName())
		return nil
	}))
}

func TestSession_DoSerializesAccess(t *testing.T) {
	st := newTestStore(time.Hour)
	s := st.Create()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Do(func(e *editor.Editor) error {
				_, err := e.AddAward(types.AwardEntry{Name: "Prize", AwardingOrg: "Society"})
				return err
			})
		}()
	}
	wg.Wait()

	require.NoError(t, s.Do(func(e *editor.Editor) error {
		assert.Len(t, e.Document().Awards, 50)
		return nil
	}))
}

func TestStore_ExpireIdle(t *testing.T) {
	st := newTestStore(time.Hour)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return now }

	stale := st.Create()
	fresh := st.Create()
	stale.lastAccess = now.Add(-2 * time.Hour)
	fresh.lastAccess = now.Add(-10 * time.Minute)

	assert.Equal(t, 1, st.ExpireIdle())
	assert.Equal(t, 1, st.Len())

	_, err := st.Get(stale.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = st.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestStore_ExpireIdleDisabled(t *testing.T) {
	st := newTestStore(0)
	s := st.Create()
	s.lastAccess = time.Now().Add(-24 * time.Hour)

	assert.Equal(t, 0, st.ExpireIdle())
	assert.Equal(t, 1, st.Len())
}

func TestStore_RunStopsWithContext(t *testing.T) {
	st := newTestStore(time.Minute)
	s := st.Create()
	s.lastAccess = time.Now().Add(-time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		st.Run(ctx, 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return st.Len() == 0 }, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
