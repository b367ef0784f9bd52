package account

import (
	"time"

	"circular-enterprise/apierr"
	"circular-enterprise/config"
	"circular-enterprise/models"
	"circular-enterprise/util/log"
	"circular-enterprise/util/timeutil"
)

// Outcome polling queries a fixed conservative block range; the exact block
// is unknown until the transaction settles.
const (
	pollStartBlock = 0
	pollEndBlock   = 10
)

// GetTransactionOutcome polls the transaction until its status leaves
// "Pending" or the timeout elapses. A failed poll records the error and
// keeps polling; only timeout or a definitive status change end the loop.
// The interval sleep happens between ticks, not before the first one.
// A non-positive interval falls back to the account interval set via
// SetInterval, then to the configured default.
func (a *Account) GetTransactionOutcome(txID string, timeout, interval time.Duration) (map[string]interface{}, error) {
	if a.NAGURL == "" {
		return nil, a.fail(apierr.New(apierr.State, "network is not set"))
	}

	if interval <= 0 {
		if a.intervalSec > 0 {
			interval = time.Duration(a.intervalSec) * time.Second
		} else {
			interval = config.GetInterval()
		}
	}

	started := time.Now()

	for {
		if time.Since(started) > timeout {
			log.Debugf("outcome polling for %s gave up after %s",
				txID, timeutil.ParseSeconds(uint64(timeout/time.Second)))
			return nil, a.fail(apierr.New(apierr.Timeout,
				"timeout exceeded while waiting for transaction outcome"))
		}

		env, err := a.getTransactionByID(txID, pollStartBlock, pollEndBlock)
		if err != nil {
			// recorded, not fatal
			a.lastErr = err
		} else if outcome, ok := terminalOutcome(env); ok {
			a.lastErr = nil
			return outcome, nil
		}

		time.Sleep(interval)
	}
}

// terminalOutcome returns the decoded Response object when the envelope
// carries a settled (non-"Pending") transaction status.
func terminalOutcome(env *models.Envelope) (map[string]interface{}, bool) {
	if env.Result == nil || *env.Result != models.ResultOK {
		return nil, false
	}

	var status models.TransactionStatus
	if err := env.ResponseObject(&status); err != nil || status.Status == "" {
		return nil, false
	}

	if status.Status == "Pending" {
		return nil, false
	}

	var outcome map[string]interface{}
	if err := env.ResponseObject(&outcome); err != nil {
		return nil, false
	}

	return outcome, true
}
