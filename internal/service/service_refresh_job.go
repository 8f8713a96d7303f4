package service

import (
	"context"
	"sync"
	"time"

	"github.com/agchain/agwallet/internal/logger"
)

type balanceRefreshJob struct {
	wallet WalletSessionService
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewBalanceRefreshJob creates a balanceRefreshJob that calls
// wallet.RefreshBalance on a ticker. The job is idle until Start is called.
func NewBalanceRefreshJob(wallet WalletSessionService, log *logger.Logger) BalanceRefreshJob {
	return &balanceRefreshJob{wallet: wallet, logger: log}
}

// Start implements BalanceRefreshJob. It stops any previously running job,
// then launches a background goroutine that refreshes the cached balance
// every interval. If interval is zero or negative it defaults to 1 minute.
// The goroutine exits when ctx is cancelled or Stop is called.
func (j *balanceRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				// An unreachable node or a logged-out wallet is routine
				// here; the next tick simply tries again.
				if _, err := j.wallet.RefreshBalance(jobCtx); err != nil {
					j.logger.Debug().Err(err).Msg("background balance refresh skipped")
				}
			}
		}
	}()
}

// Stop implements BalanceRefreshJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *balanceRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
