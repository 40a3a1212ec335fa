package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/mocks/state"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/session"
)

func TestStateTokenSource_ReadsSlot(t *testing.T) {
	mem := state.NewMemoryStateStore()
	require.NoError(t, mem.Set(context.Background(), session.TokenKey, []byte("abc")))

	tok, err := NewStateTokenSource(mem).Token()
	require.NoError(t, err)
	assert.Equal(t, "abc", tok.AccessToken)
	assert.Equal(t, "Bearer", tok.TokenType)
}

func TestStateTokenSource_AbsentSlotIsEmptyToken(t *testing.T) {
	mem := state.NewMemoryStateStore()

	tok, err := NewStateTokenSource(mem).Token()
	require.NoError(t, err)
	assert.Empty(t, tok.AccessToken)
}

func TestStateTokenSource_StorageFailure(t *testing.T) {
	mem := state.NewMemoryStateStore()
	mem.GetFunc = func(context.Context, string) ([]byte, error) {
		return nil, errors.New("redis down")
	}

	_, err := NewStateTokenSource(mem).Token()
	assert.Error(t, err)
}

func TestStateTokenSource_SeesLatestWrite(t *testing.T) {
	mem := state.NewMemoryStateStore()
	source := NewStateTokenSource(mem)
	ctx := context.Background()

	require.NoError(t, mem.Set(ctx, session.TokenKey, []byte("first")))
	tok, err := source.Token()
	require.NoError(t, err)
	assert.Equal(t, "first", tok.AccessToken)

	require.NoError(t, mem.Set(ctx, session.TokenKey, []byte("second")))
	tok, err = source.Token()
	require.NoError(t, err)
	assert.Equal(t, "second", tok.AccessToken)
}
