package model

import "github.com/gagliardetto/solana-go"

// IndexKind names a secondary token index.
type IndexKind string

var (
	// TokenOwnerIndex maps wallet owners to their token accounts.
	TokenOwnerIndex IndexKind = "token_owner"
	// TokenMintIndex maps mints to their token accounts.
	TokenMintIndex IndexKind = "token_mint"
)

// TokenIndexEntry maps a secondary key (token owner or mint) to the token
// account it was derived from, at the slot of the originating update.
type TokenIndexEntry struct {
	SecondaryKey solana.PublicKey
	AccountKey   solana.PublicKey
	Slot         uint64
}
