package services

import (
	"github.com/SscSPs/asset_compass/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/asset_compass/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/asset_compass/internal/core/ports/services"
	"github.com/SscSPs/asset_compass/internal/platform/config"
)

// Upstream groups the external collaborators the services talk to.
// Any of them may be nil: prices then resolve offline and no confirmations are sent.
type Upstream struct {
	Market   providers.MarketDataProvider
	FX       providers.FXProvider
	Notifier providers.TradeNotifier
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, upstream Upstream) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The oracle comes first since every other service prices through it
	container.Oracle = NewPriceOracle(
		upstream.Market,
		upstream.FX,
		repos.RateCache,
		WithFetchTimeout(cfg.MarketFetchTimeout),
		WithSeedRates(cfg.FXSeedRates),
	)

	container.Ledger = NewLedgerService(repos.LedgerRepo)

	tradeOpts := []TradeOption{}
	if upstream.Notifier != nil {
		tradeOpts = append(tradeOpts, WithTradeNotifier(upstream.Notifier))
	}
	container.Trade = NewTradeService(repos.HoldingRepo, container.Ledger, container.Oracle, tradeOpts...)

	container.Valuation = NewValuationService(repos.HoldingRepo, container.Oracle, cfg.ReferenceCurrency)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.PriceOracleSvc = (*priceOracle)(nil)
	_ portssvc.LedgerSvc      = (*ledgerService)(nil)
	_ portssvc.TradeSvcFacade = (*tradeService)(nil)
	_ portssvc.ValuationSvc   = (*valuationService)(nil)
	_ providers.TradeNotifier = (*NotificationQueue)(nil)
)
