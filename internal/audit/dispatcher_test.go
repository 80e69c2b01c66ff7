package audit

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/tattoo-scheduler/internal/models"
)

func TestDispatcher_WritesQueuedEventsOnClose(t *testing.T) {
	store := NewMemoryStore()
	d := NewDispatcher(New(store), zerolog.New(io.Discard))

	id := uint(4)
	d.Dispatch(Event{Action: "client_created", Entity: "cliente", EntityID: &id, Metadata: map[string]string{"email": "a@x.io"}})
	d.Dispatch(Event{Action: "appointment_conflict", Entity: "cita"})
	d.Close()

	logs, total, err := store.List(context.Background(), Filter{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, logs, 2)

	// newest first
	assert.Equal(t, "appointment_conflict", logs[0].Action)
	assert.Equal(t, "client_created", logs[1].Action)
	assert.Equal(t, `{"email":"a@x.io"}`, logs[1].Metadata)
	require.NotNil(t, logs[1].EntityID)
	assert.Equal(t, uint(4), *logs[1].EntityID)
}

func TestDispatcher_IgnoresAfterClose(t *testing.T) {
	store := NewMemoryStore()
	d := NewDispatcher(New(store), zerolog.New(io.Discard))
	d.Close()

	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "late"})
		d.Close()
	})

	_, total, err := store.List(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Dispatch(Event{Action: "x"}) })
}

func TestMemoryStore_ListFilterAndPage(t *testing.T) {
	store := NewMemoryStore()
	logger := New(store)
	ctx := context.Background()

	for _, a := range []string{"client_created", "artist_created", "client_deleted", "client_updated"} {
		entity := "cliente"
		if a == "artist_created" {
			entity = "tatuador"
		}
		require.NoError(t, logger.Log(ctx, Event{Action: a, Entity: entity}))
	}

	logs, total, err := store.List(ctx, Filter{Entity: "cliente", Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, logs, 2)
	assert.Equal(t, "client_updated", logs[0].Action)
	assert.Equal(t, "client_deleted", logs[1].Action)

	logs, _, err = store.List(ctx, Filter{Entity: "cliente", Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "client_created", logs[0].Action)

	logs, _, err = store.List(ctx, Filter{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestMemoryStore_NegativeOffset(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Record(context.Background(), &models.AuditLog{Action: "client_created", Entity: "cliente"}))

	logs, total, err := store.List(context.Background(), Filter{Limit: 50, Offset: -50})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Empty(t, logs)
}
