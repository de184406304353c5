package pipeline

import (
	"fmt"
	"time"
)

const (
	defaultQueueCapacity  = 40960
	defaultBatchSize      = 10
	defaultFlushInterval  = time.Second
	defaultSubmitTimeout  = 10 * time.Second
	defaultWorkers        = 10
	defaultStoreTimeout   = 30 * time.Second
	defaultMaxRetries     = 5
	defaultRetryBaseDelay = 500 * time.Millisecond
	defaultRetryMaxDelay  = 10 * time.Second
)

// Config tunes the ingestion pipeline. The zero value picks defaults for
// every numeric field.
type Config struct {
	QueueCapacity  int           // bounded queue size per record kind
	BatchSize      int           // records per batch before a flush is forced
	FlushInterval  time.Duration // upper bound on how long a pending batch waits
	SubmitTimeout  time.Duration // how long Submit blocks under backpressure
	Workers        int           // worker goroutines
	StoreTimeout   time.Duration // per store round-trip
	MaxRetries     int           // flush attempts before a batch is dropped
	RetryBaseDelay time.Duration // first retry backoff delay
	RetryMaxDelay  time.Duration // backoff cap

	PanicOnError    bool // halt the pipeline on a flush failure instead of retrying
	StoreHistorical bool // keep an append-only history row per account write
	TokenOwnerIndex bool // maintain the token owner secondary index
	TokenMintIndex  bool // maintain the token mint secondary index
}

func (c Config) withDefaults() Config {
	if c.QueueCapacity == 0 {
		c.QueueCapacity = defaultQueueCapacity
	}
	if c.BatchSize == 0 {
		c.BatchSize = defaultBatchSize
	}
	if c.FlushInterval == 0 {
		c.FlushInterval = defaultFlushInterval
	}
	if c.SubmitTimeout == 0 {
		c.SubmitTimeout = defaultSubmitTimeout
	}
	if c.Workers == 0 {
		c.Workers = defaultWorkers
	}
	if c.StoreTimeout == 0 {
		c.StoreTimeout = defaultStoreTimeout
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = defaultMaxRetries
	}
	if c.RetryBaseDelay == 0 {
		c.RetryBaseDelay = defaultRetryBaseDelay
	}
	if c.RetryMaxDelay == 0 {
		c.RetryMaxDelay = defaultRetryMaxDelay
	}
	return c
}

// Validate rejects configurations no pipeline should start with.
func (c Config) Validate() error {
	if c.QueueCapacity < 0 {
		return fmt.Errorf("queue capacity must be positive, got %d", c.QueueCapacity)
	}
	if c.BatchSize < 0 {
		return fmt.Errorf("batch size must be positive, got %d", c.BatchSize)
	}
	if c.BatchSize > c.QueueCapacity && c.QueueCapacity > 0 {
		return fmt.Errorf("batch size %d exceeds queue capacity %d", c.BatchSize, c.QueueCapacity)
	}
	if c.Workers < 0 {
		return fmt.Errorf("worker count must be positive, got %d", c.Workers)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max retries must be positive, got %d", c.MaxRetries)
	}
	if c.FlushInterval < 0 || c.SubmitTimeout < 0 || c.StoreTimeout < 0 ||
		c.RetryBaseDelay < 0 || c.RetryMaxDelay < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	if c.RetryMaxDelay != 0 && c.RetryMaxDelay < c.RetryBaseDelay {
		return fmt.Errorf("retry max delay %s below base delay %s", c.RetryMaxDelay, c.RetryBaseDelay)
	}
	return nil
}
