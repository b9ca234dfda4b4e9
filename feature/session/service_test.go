package session

import (
	"context"
	"testing"

	"admin-console/core/console"
	"admin-console/core/pager"
	"admin-console/core/snapshot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_PersistsMutations(t *testing.T) {
	ctx := context.Background()
	store := snapshot.NewMemory()
	registry := console.NewRegistry(store, console.Options{FetchRows: 5}, zap.NewNop())
	svc := NewService(registry, zap.NewNop())

	id, err := svc.Create(ctx)
	require.NoError(t, err)

	_, err = svc.SetClipboard(ctx, id, []string{"c1"})
	require.NoError(t, err)

	data, err := store.Load(ctx, id)
	require.NoError(t, err)
	restored, err := console.Unmarshal(data, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, restored.Clipboard().Get())
}

func TestService_ResetPagerKeepsWindow(t *testing.T) {
	ctx := context.Background()
	svc := NewService(console.NewRegistry(nil, console.Options{FetchRows: 5}, zap.NewNop()), zap.NewNop())
	id, err := svc.Create(ctx)
	require.NoError(t, err)

	_, err = svc.ResetPager(ctx, id, 20, 0)
	require.NoError(t, err)
	_, err = svc.MovePager(ctx, id, "last", false)
	require.NoError(t, err)

	state, err := svc.ResetPager(ctx, id, 40, 0)
	require.NoError(t, err)
	assert.Equal(t, console.PagerState{Start: 15, Total: 40, Fetch: 5, Text: "16 - 20 / 40"}, state)

	// Shrinking the result clamps the window to the new last page.
	state, err = svc.ResetPager(ctx, id, 12, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, state.Start)
}

func TestService_MovePagerUnknown(t *testing.T) {
	ctx := context.Background()
	svc := NewService(console.NewRegistry(nil, console.Options{}, zap.NewNop()), zap.NewNop())
	id, err := svc.Create(ctx)
	require.NoError(t, err)

	_, err = svc.MovePager(ctx, id, "up", true)
	assert.ErrorIs(t, err, pager.ErrUnknownMove)
}
