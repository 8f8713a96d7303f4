package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/agchain/agwallet/internal/logger"
	"github.com/agchain/agwallet/internal/mock"
	"github.com/agchain/agwallet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newCountingRefreshJob wires a job over a wallet mock whose RefreshBalance
// increments calls and returns err.
func newCountingRefreshJob(t *testing.T, ctrl *gomock.Controller, calls *atomic.Int64, err error) BalanceRefreshJob {
	t.Helper()

	mockWallet := mock.NewMockWalletSessionService(ctrl)
	mockWallet.EXPECT().RefreshBalance(gomock.Any()).DoAndReturn(
		func(context.Context) (models.WalletState, error) {
			calls.Add(1)
			return models.WalletState{}, err
		},
	).AnyTimes()

	return NewBalanceRefreshJob(mockWallet, logger.Nop())
}

func TestBalanceRefreshJob_Start_CallsRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var calls atomic.Int64
	job := newCountingRefreshJob(t, ctrl, &calls, nil)

	// 10ms interval over 55ms should yield several ticks.
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "RefreshBalance should have been called repeatedly, got %d calls", got)
}

func TestBalanceRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var calls atomic.Int64
	job := newCountingRefreshJob(t, ctrl, &calls, nil)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, calls.Load(), "no new calls after Stop")
}

func TestBalanceRefreshJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var calls atomic.Int64
	job := newCountingRefreshJob(t, ctrl, &calls, nil)

	assert.NotPanics(t, func() { job.Stop() })
	assert.NotPanics(t, func() { job.Stop() })
}

func TestBalanceRefreshJob_DefaultInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var calls atomic.Int64
	job := newCountingRefreshJob(t, ctrl, &calls, nil)

	ctx, cancel := context.WithCancel(context.Background())

	// interval <= 0 falls back to 1 minute, so 20ms must see no ticks.
	job.Start(ctx, 0)
	time.Sleep(20 * time.Millisecond)
	cancel()
	job.Stop()

	assert.Equal(t, int64(0), calls.Load())
}

func TestBalanceRefreshJob_ErrorsDoNotStopJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var calls atomic.Int64
	job := newCountingRefreshJob(t, ctrl, &calls, assert.AnError)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "refresh keeps running despite errors, got %d calls", got)
}

func TestBalanceRefreshJob_ContextCancel_StopsJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var calls atomic.Int64
	job := newCountingRefreshJob(t, ctrl, &calls, nil)

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Stop hung after context cancellation")
	}

	require.Greater(t, calls.Load(), int64(0))
}
