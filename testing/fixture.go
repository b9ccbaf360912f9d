// Package premiumtesting provides utilities for testing applications
// that use premiumkit. It wires a complete premium.Service to
// in-memory backends so host integration tests need no database.
//
// Example usage:
//
//	fx := premiumtesting.NewFixture(premium.DurationPolicy{Days: 30})
//	host := myapp.New(fx.Service)
//	// exercise host code, inspect fx.Accounts / fx.Characters
package premiumtesting

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/realmkit/premiumkit/premium"
	memorystore "github.com/realmkit/premiumkit/storage/memory"
)

// Fixture bundles a ready-to-use Service with its two memory backends
// exposed for direct inspection.
type Fixture struct {
	Service    *premium.Service
	Accounts   *memorystore.Store
	Characters *memorystore.Store
}

// NewFixture builds an in-memory premium setup using the given
// duration policy. Logging is discarded.
func NewFixture(policy premium.DurationPolicy) *Fixture {
	log := logrus.New()
	log.SetOutput(io.Discard)

	accounts := memorystore.New()
	characters := memorystore.New()
	svc := premium.NewService(
		premium.NewStore(premium.ScopeAccount, accounts, policy),
		premium.NewStore(premium.ScopeCharacter, characters, policy),
		log,
	)
	return &Fixture{Service: svc, Accounts: accounts, Characters: characters}
}
