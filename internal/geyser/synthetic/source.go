// Package synthetic generates a plausible validator firehose for local runs
// and load testing: a startup snapshot replay followed by steadily advancing
// slots carrying account writes, transactions and block metadata.
package synthetic

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/geyserwatch/solsink-backend/internal/geyser"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	defaultAccounts            = 1024
	defaultTokenAccounts       = 256
	defaultStartupAccounts     = 512
	defaultAccountsPerSlot     = 8
	defaultTransactionsPerSlot = 16
	defaultVoteEvery           = 4
	defaultRootedLag           = 32
	defaultRPS                 = 2000

	baseSlot         = 150_000_000
	startupSlotCount = 4
	rentEpoch        = 361
)

// Config tunes the shape and rate of the generated stream.
type Config struct {
	Accounts            int    // synthetic keyspace size
	TokenAccounts       int    // leading subset shaped as SPL token accounts
	StartupAccounts     int    // snapshot updates replayed before end-of-startup
	AccountsPerSlot     int    // account writes per steady-state slot
	TransactionsPerSlot int    // transactions per steady-state slot
	VoteEvery           int    // every Nth transaction is a vote; 0 disables votes
	RootedLag           uint64 // slots between processed and rooted
	RPS                 int    // steady-state notifications per second
	Seed                int64  // rng seed; 0 derives one from the clock
}

func (c Config) withDefaults() Config {
	if c.Accounts <= 0 {
		c.Accounts = defaultAccounts
	}
	if c.TokenAccounts <= 0 {
		c.TokenAccounts = defaultTokenAccounts
	}
	if c.TokenAccounts > c.Accounts {
		c.TokenAccounts = c.Accounts
	}
	if c.StartupAccounts <= 0 {
		c.StartupAccounts = defaultStartupAccounts
	}
	if c.AccountsPerSlot <= 0 {
		c.AccountsPerSlot = defaultAccountsPerSlot
	}
	if c.TransactionsPerSlot <= 0 {
		c.TransactionsPerSlot = defaultTransactionsPerSlot
	}
	if c.VoteEvery < 0 {
		c.VoteEvery = defaultVoteEvery
	}
	if c.RootedLag == 0 {
		c.RootedLag = defaultRootedLag
	}
	if c.RPS <= 0 {
		c.RPS = defaultRPS
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

type keyState struct {
	pubkey solana.PublicKey
	owner  solana.PublicKey
	token  bool
	mint   solana.PublicKey
	wallet solana.PublicKey
}

// Source drives a Sink with generated notifications.
type Source struct {
	logger   *zap.Logger
	sink     Sink
	filter   AccountFilter
	cfg      Config
	rl       ratelimit.Limiter
	rng      *rand.Rand
	keys     []keyState
	writeVer uint64
}

// NewSource builds a Source with dependencies.
func NewSource(logger *zap.Logger, sink Sink, filter AccountFilter, cfg Config) (*Source, error) {
	if sink == nil {
		return nil, errors.New("synthetic source sink is required")
	}
	if filter == nil {
		return nil, errors.New("synthetic source account filter is required")
	}
	cfg = cfg.withDefaults()

	s := &Source{
		logger: logger.Named("synthetic"),
		sink:   sink,
		filter: filter,
		cfg:    cfg,
		rl:     ratelimit.New(cfg.RPS),
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}
	s.keys = s.generateKeyspace()
	return s, nil
}

// Run replays the startup snapshot, signals end-of-startup, then emits
// steady-state slots until the context is canceled.
func (s *Source) Run(ctx context.Context) error {
	s.logger.Info("replaying startup snapshot",
		zap.Int("accounts", s.cfg.StartupAccounts),
		zap.Int("keyspace", len(s.keys)),
	)
	if err := s.replayStartup(ctx); err != nil {
		return err
	}
	if err := s.sink.NotifyEndOfStartup(ctx); err != nil {
		return fmt.Errorf("notify end of startup: %w", err)
	}
	s.logger.Info("startup complete; entering steady state", zap.Int("rps", s.cfg.RPS))

	slot := uint64(baseSlot + startupSlotCount)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.emitSlot(ctx, slot); err != nil {
			return err
		}
		slot++
	}
}

// replayStartup emits the snapshot at full speed; the validator does not
// rate-limit snapshot delivery either.
func (s *Source) replayStartup(ctx context.Context) error {
	for i := 0; i < s.cfg.StartupAccounts; i++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		slot := uint64(baseSlot + s.rng.Intn(startupSlotCount))
		k := s.keys[s.rng.Intn(len(s.keys))]
		if err := s.emitAccount(ctx, slot, k, false); err != nil {
			return err
		}
	}
	return nil
}

func (s *Source) emitSlot(ctx context.Context, slot uint64) error {
	for i := 0; i < s.cfg.AccountsPerSlot; i++ {
		k := s.keys[s.rng.Intn(len(s.keys))]
		if err := s.emitAccount(ctx, slot, k, true); err != nil {
			return err
		}
	}
	for i := 0; i < s.cfg.TransactionsPerSlot; i++ {
		if err := s.emitTransaction(ctx, slot, i); err != nil {
			return err
		}
	}
	if err := s.emitBlock(ctx, slot); err != nil {
		return err
	}

	if err := s.emitSlotStatus(ctx, slot, "processed"); err != nil {
		return err
	}
	if slot >= baseSlot+2 {
		if err := s.emitSlotStatus(ctx, slot-2, "confirmed"); err != nil {
			return err
		}
	}
	if slot >= baseSlot+s.cfg.RootedLag {
		if err := s.emitSlotStatus(ctx, slot-s.cfg.RootedLag, "rooted"); err != nil {
			return err
		}
	}
	return nil
}

func (s *Source) emitAccount(ctx context.Context, slot uint64, k keyState, limit bool) error {
	s.writeVer++
	info := geyser.AccountInfo{
		Pubkey:       k.pubkey.Bytes(),
		Lamports:     uint64(s.rng.Intn(10_000_000_000)),
		Owner:        k.owner.Bytes(),
		Executable:   false,
		RentEpoch:    rentEpoch,
		Data:         s.accountData(k),
		WriteVersion: s.writeVer,
		TxnSignature: s.randomSignature(),
	}
	acc, err := geyser.BuildAccountUpdate(slot, info)
	if err != nil {
		return fmt.Errorf("build account update: %w", err)
	}
	if !s.filter.IsAccountSelected(acc.Pubkey, acc.Owner) {
		return nil
	}

	if limit {
		s.rl.Take()
	}
	if err := s.sink.SubmitAccount(ctx, acc); err != nil {
		s.logger.Warn("account update rejected", zap.Uint64("slot", slot), zap.Error(err))
	}
	return nil
}

func (s *Source) emitTransaction(ctx context.Context, slot uint64, index int) error {
	pre := []uint64{uint64(1_000_000 + s.rng.Intn(1_000_000_000)), uint64(1_000_000 + s.rng.Intn(1_000_000_000))}
	post := []uint64{pre[0] - uint64(s.rng.Intn(5000)), pre[1] + uint64(s.rng.Intn(5000))}
	info := geyser.TransactionInfo{
		Signature:         s.mustRandomSignature(),
		IsVote:            s.cfg.VoteEvery > 0 && index%s.cfg.VoteEvery == 0,
		Index:             index,
		Fee:               5000,
		PreBalances:       pre,
		PostBalances:      post,
		InnerInstructions: []byte(`[]`),
		Logs:              []string{"Program 11111111111111111111111111111111 invoke [1]"},
		Signer:            s.keys[s.rng.Intn(len(s.keys))].pubkey.Bytes(),
	}
	if s.rng.Intn(50) == 0 {
		failure := "InstructionError(0, Custom(1))"
		info.Err = &failure
	}

	txn, err := geyser.BuildTransactionRecord(slot, info)
	if err != nil {
		return fmt.Errorf("build transaction: %w", err)
	}

	s.rl.Take()
	if err := s.sink.SubmitTransaction(ctx, txn); err != nil {
		s.logger.Warn("transaction rejected", zap.Uint64("slot", slot), zap.Error(err))
	}
	return nil
}

func (s *Source) emitBlock(ctx context.Context, slot uint64) error {
	blockTime := time.Now().Unix()
	height := slot - baseSlot
	info := geyser.BlockInfo{
		Slot:                     slot,
		Blockhash:                s.randomKey().String(),
		Rewards:                  []byte(`[]`),
		BlockTime:                &blockTime,
		BlockHeight:              &height,
		ParentSlot:               slot - 1,
		ParentBlockhash:          s.randomKey().String(),
		ExecutedTransactionCount: s.cfg.TransactionsPerSlot,
	}
	block, err := geyser.BuildBlockMetadataRecord(info)
	if err != nil {
		return fmt.Errorf("build block metadata: %w", err)
	}

	s.rl.Take()
	if err := s.sink.SubmitBlock(ctx, block); err != nil {
		s.logger.Warn("block metadata rejected", zap.Uint64("slot", slot), zap.Error(err))
	}
	return nil
}

func (s *Source) emitSlotStatus(ctx context.Context, slot uint64, status string) error {
	parent := slot - 1
	ts := time.Now().Unix()
	update, err := geyser.BuildSlotStatusUpdate(geyser.SlotInfo{
		Slot:      slot,
		Parent:    &parent,
		Status:    status,
		Blockhash: s.randomKey().String(),
		Leader:    s.keys[s.rng.Intn(len(s.keys))].pubkey.String(),
		Timestamp: &ts,
	})
	if err != nil {
		return fmt.Errorf("build slot status: %w", err)
	}

	s.rl.Take()
	if err := s.sink.SubmitSlot(ctx, update); err != nil {
		s.logger.Warn("slot status rejected", zap.Uint64("slot", slot), zap.Error(err))
	}
	return nil
}

func (s *Source) generateKeyspace() []keyState {
	keys := make([]keyState, s.cfg.Accounts)
	for i := range keys {
		k := keyState{pubkey: s.randomKey(), owner: s.randomKey()}
		if i < s.cfg.TokenAccounts {
			k.owner = solana.TokenProgramID
			k.token = true
			k.mint = s.randomKey()
			k.wallet = s.randomKey()
		}
		keys[i] = k
	}
	return keys
}

// accountData emits the SPL token account layout for token-shaped keys: mint
// at [0:32], owner at [32:64], amount at [64:72].
func (s *Source) accountData(k keyState) []byte {
	if k.token {
		data := make([]byte, 165)
		copy(data[0:32], k.mint.Bytes())
		copy(data[32:64], k.wallet.Bytes())
		binary.LittleEndian.PutUint64(data[64:72], uint64(s.rng.Intn(1_000_000_000)))
		return data
	}

	data := make([]byte, 8+s.rng.Intn(248))
	s.rng.Read(data)
	return data
}

func (s *Source) randomKey() solana.PublicKey {
	var b [32]byte
	s.rng.Read(b[:])
	return solana.PublicKeyFromBytes(b[:])
}

func (s *Source) randomSignature() []byte {
	if s.rng.Intn(4) == 0 {
		return nil
	}
	return s.mustRandomSignature()
}

func (s *Source) mustRandomSignature() []byte {
	b := make([]byte, 64)
	s.rng.Read(b)
	return b
}
