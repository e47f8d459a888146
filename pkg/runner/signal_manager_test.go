package runner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignalManager_Lifecycle(t *testing.T) {
	sm := NewSignalManager(context.Background())

	// 1. Armed
	assert.NoError(t, sm.Context().Err())
	assert.False(t, sm.Interrupted())

	// 2. Stopped
	sm.Stop()
	assert.ErrorIs(t, sm.Context().Err(), context.Canceled)
	assert.True(t, sm.Interrupted())
}

func TestSignalManager_FollowsParent(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	sm := NewSignalManager(parent)
	defer sm.Stop()

	cancel()
	assert.True(t, sm.Interrupted())
}
