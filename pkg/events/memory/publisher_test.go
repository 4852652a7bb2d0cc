package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tessera/pkg/events"
)

func TestPublisher(t *testing.T) {
	ctx := context.Background()

	t.Run("records emitted events in order", func(t *testing.T) {
		p := New()
		first := events.Event{Name: events.EventRiskAssessed, AssetID: "a", Timestamp: time.Now()}
		second := events.Event{Name: events.EventAMCAssigned, AssetID: "b", Timestamp: time.Now()}

		require.NoError(t, p.Emit(ctx, first))
		require.NoError(t, p.Emit(ctx, second))

		all := p.Events()
		require.Len(t, all, 2)
		assert.Equal(t, first.Name, all[0].Name)
		assert.Equal(t, second.Name, all[1].Name)
	})

	t.Run("filters by name", func(t *testing.T) {
		p := New()
		require.NoError(t, p.Emit(ctx, events.Event{Name: events.EventRiskAssessed}))
		require.NoError(t, p.Emit(ctx, events.Event{Name: events.EventAMCAssigned}))
		require.NoError(t, p.Emit(ctx, events.Event{Name: events.EventRiskAssessed}))

		assert.Len(t, p.ByName(events.EventRiskAssessed), 2)
		assert.Len(t, p.ByName(events.EventVerificationCompleted), 0)
	})

	t.Run("rejects emits after close", func(t *testing.T) {
		p := New()
		require.NoError(t, p.Close())
		assert.ErrorIs(t, p.Emit(ctx, events.Event{}), events.ErrPublisherClosed)
	})
}
