package diaglog

import (
	"context"
	"errors"
	"testing"

	"github.com/rohithbabu/foliohub/internal/app/store/debuglogs"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNilLoggerIsNoOp(t *testing.T) {
	var l *Logger
	ctx := context.Background()

	// None of these may panic.
	l.Info(ctx, "getAll", "projects", nil)
	l.Warning(ctx, "getAll", "projects", "degraded", nil)
	l.Error(ctx, "getAll", "projects", errors.New("boom"), nil)

	assert.Nil(t, l.Recent(10))
	assert.NoError(t, l.Clear(ctx))
}

func TestRecentNewestFirst(t *testing.T) {
	l := New(nil, zap.NewNop(), Config{Mode: "log"})
	ctx := context.Background()

	l.Info(ctx, "first", "projects", nil)
	l.Info(ctx, "second", "projects", nil)
	l.Info(ctx, "third", "projects", nil)

	got := l.Recent(2)
	assert.Len(t, got, 2)
	assert.Equal(t, "third", got[0].Operation)
	assert.Equal(t, "second", got[1].Operation)
}

func TestRingIsBounded(t *testing.T) {
	l := New(nil, zap.NewNop(), Config{Mode: "log"})
	ctx := context.Background()

	for i := 0; i < ringCap+50; i++ {
		l.Info(ctx, "op", "projects", nil)
	}
	assert.Len(t, l.Recent(0), ringCap)
}

func TestOffModeRecordsNothing(t *testing.T) {
	l := New(nil, zap.NewNop(), Config{Mode: "off"})
	l.Info(context.Background(), "op", "projects", nil)
	assert.Empty(t, l.Recent(10))
}

func TestTimestampStamped(t *testing.T) {
	l := New(nil, zap.NewNop(), Config{Mode: "log"})
	l.Info(context.Background(), "op", "projects", nil)

	got := l.Recent(1)
	assert.Len(t, got, 1)
	assert.False(t, got[0].Timestamp.IsZero())
}

func TestClearEmptiesRing(t *testing.T) {
	l := New(nil, zap.NewNop(), Config{Mode: "log"})
	ctx := context.Background()

	l.Info(ctx, "op", "projects", nil)
	assert.NoError(t, l.Clear(ctx))
	assert.Empty(t, l.Recent(10))
}

func TestErrorEntryCarriesMessage(t *testing.T) {
	l := New(nil, zap.NewNop(), Config{Mode: "log"})
	l.Error(context.Background(), "update", "skills", errors.New("write failed"), map[string]string{"id": "abc"})

	got := l.Recent(1)
	assert.Len(t, got, 1)
	assert.Equal(t, debuglogs.StatusError, got[0].Status)
	assert.Equal(t, "write failed", got[0].Message)
	assert.Equal(t, "abc", got[0].Details["id"])
}
