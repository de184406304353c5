package pipeline

import (
	"github.com/gagliardetto/solana-go"
	"github.com/geyserwatch/solsink-backend/internal/model"
)

// splTokenAccountSize is the packed length of an SPL token account; shorter
// data cannot carry the mint/owner layout and is never indexed.
const splTokenAccountSize = 165

// indexMaintainer derives token secondary index entries from account batches
// about to flush. Derivation is pure: the same batch always yields the same
// entries, so a retried flush stages identical index rows.
type indexMaintainer struct {
	owner bool
	mint  bool
}

func newIndexMaintainer(owner, mint bool) *indexMaintainer {
	return &indexMaintainer{owner: owner, mint: mint}
}

func (m *indexMaintainer) enabled() bool {
	return m.owner || m.mint
}

// derive extracts owner and mint index entries from the token-shaped accounts
// of a batch. The SPL token account layout places the mint at data[0:32] and
// the wallet owner at data[32:64].
func (m *indexMaintainer) derive(batch []model.AccountUpdate) (owners, mints []model.TokenIndexEntry) {
	if !m.enabled() {
		return nil, nil
	}

	for _, update := range batch {
		if update.Owner != solana.TokenProgramID || len(update.Data) < splTokenAccountSize {
			continue
		}
		if m.owner {
			owners = append(owners, model.TokenIndexEntry{
				SecondaryKey: solana.PublicKeyFromBytes(update.Data[32:64]),
				AccountKey:   update.Pubkey,
				Slot:         update.Slot,
			})
		}
		if m.mint {
			mints = append(mints, model.TokenIndexEntry{
				SecondaryKey: solana.PublicKeyFromBytes(update.Data[0:32]),
				AccountKey:   update.Pubkey,
				Slot:         update.Slot,
			})
		}
	}
	return owners, mints
}
