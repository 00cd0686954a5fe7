package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/asset_compass/internal/core/domain"
	portssvc "github.com/SscSPs/asset_compass/internal/core/ports/services"
)

// FXWarmJob refreshes USD rates on a schedule so request paths rarely see a cold cache.
type FXWarmJob struct {
	oracle     portssvc.PriceOracleSvc
	currencies []string
	timeout    time.Duration
}

// NewFXWarmJob creates a job refreshing USD/<code> for every code in currencies.
func NewFXWarmJob(oracle portssvc.PriceOracleSvc, currencies []string, timeout time.Duration) *FXWarmJob {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &FXWarmJob{oracle: oracle, currencies: currencies, timeout: timeout}
}

func (j *FXWarmJob) Name() string { return "fx-warm" }

// Run fetches every configured pair. It reports the pairs that could only be served stale.
func (j *FXWarmJob) Run() error {
	var stale []string
	for _, code := range j.currencies {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		quote := j.oracle.GetExchangeRate(ctx, domain.USDTo(code))
		cancel()
		if quote.Stale {
			stale = append(stale, quote.Pair.String())
		}
	}
	if len(stale) > 0 {
		return fmt.Errorf("no live rate for %s", strings.Join(stale, ", "))
	}
	return nil
}
