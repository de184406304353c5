// Package selector implements account filtering for the ingestion daemon.
package selector

import (
	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

// Wildcard in the accounts list selects every account.
const Wildcard = "*"

// AccountsSelector decides which account updates are ingested: by account
// pubkey, by owner program, or all of them.
type AccountsSelector struct {
	accounts  map[solana.PublicKey]struct{}
	owners    map[solana.PublicKey]struct{}
	selectAll bool
}

// NewAccountsSelector builds a selector from base58-encoded account and owner
// keys. Malformed keys are skipped with a warning rather than failing the
// daemon, matching how selector config has always been treated.
func NewAccountsSelector(logger *zap.Logger, accounts, owners []string) *AccountsSelector {
	logger.Info("creating accounts selector",
		zap.Strings("accounts", accounts),
		zap.Strings("owners", owners),
	)

	s := &AccountsSelector{
		accounts: make(map[solana.PublicKey]struct{}, len(accounts)),
		owners:   make(map[solana.PublicKey]struct{}, len(owners)),
	}

	for _, key := range accounts {
		if key == Wildcard {
			return &AccountsSelector{selectAll: true}
		}
	}

	for _, key := range accounts {
		pubkey, err := solana.PublicKeyFromBase58(key)
		if err != nil {
			logger.Warn("skipping malformed account key", zap.String("key", key), zap.Error(err))
			continue
		}
		s.accounts[pubkey] = struct{}{}
	}
	for _, key := range owners {
		pubkey, err := solana.PublicKeyFromBase58(key)
		if err != nil {
			logger.Warn("skipping malformed owner key", zap.String("key", key), zap.Error(err))
			continue
		}
		s.owners[pubkey] = struct{}{}
	}

	return s
}

// IsAccountSelected reports whether an update for account owned by owner
// passes the filter.
func (s *AccountsSelector) IsAccountSelected(account, owner solana.PublicKey) bool {
	if s.selectAll {
		return true
	}
	if _, ok := s.accounts[account]; ok {
		return true
	}
	_, ok := s.owners[owner]
	return ok
}

// IsEnabled reports whether the selector can match anything at all.
func (s *AccountsSelector) IsEnabled() bool {
	return s.selectAll || len(s.accounts) > 0 || len(s.owners) > 0
}
