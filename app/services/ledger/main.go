package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/genesis"
	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/state"
	"github.com/JBennack23/IXH25-UNIPG/foundation/blockchain/worker"
	"github.com/JBennack23/IXH25-UNIPG/foundation/events"
	"github.com/JBennack23/IXH25-UNIPG/foundation/logger"
	"github.com/ardanlabs/conf/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// build is the git version of this program. It is set using build flags
// in the makefile.
var build = "develop"

func main() {

	// Construct the application logger.
	log, err := logger.New("LEDGER")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	// Perform the startup and shutdown sequence.
	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =========================================================================
	// Configuration

	cfg := struct {
		conf.Version
		Ledger struct {
			GenesisFile string        `conf:"default:zblock/genesis.json"`
			MineTimeout time.Duration `conf:"default:2m"`
		}
		Demo struct {
			TransferValue  uint64 `conf:"default:4"`
			OversizedValue uint64 `conf:"default:20"`
		}
	}{
		Version: conf.Version{
			Build: build,
			Desc:  "account ledger simulation",
		},
	}

	// Parse will set the defaults and then look for any overriding values
	// in environment variables and command line flags.
	const prefix = "LEDGER"
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	// =========================================================================
	// App Starting

	log.Infow("starting service", "version", build)
	defer log.Infow("shutdown complete")

	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Infow("startup", "config", out)

	// =========================================================================
	// Ledger Support

	// The chain parameters come from the genesis file when one exists;
	// otherwise the defaults are used.
	gen, err := genesis.Load(cfg.Ledger.GenesisFile)
	if err != nil {
		log.Infow("startup", "status", "genesis file not loaded, using defaults", "path", cfg.Ledger.GenesisFile)
		gen = genesis.New()
	}

	// The ledger packages accept a function of this signature to narrate
	// what they are doing. The narration is fanned out through the events
	// package and logged from a single subscriber.
	evts := events.New()

	traceID := uuid.NewString()
	ch := evts.Acquire(traceID)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for event := range ch {
			log.Infow(event.Message, "traceid", traceID)
		}
	}()

	// Closing the event channels lets the logging G drain and exit.
	defer func() {
		evts.Shutdown()
		wg.Wait()
	}()

	st := state.New(state.Config{
		Genesis:   gen,
		EvHandler: evts.Send,
	})
	defer st.Shutdown()

	// The worker provides background mining with cancel support. The
	// demo below mines synchronously, but the worker keeps shutdown
	// semantics identical to a long-running deployment.
	worker.Run(st, evts.Send)

	// =========================================================================
	// Demo Scenario

	log.Infow("demo", "status", "creating accounts")

	alice, err := st.CreateAccount()
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}
	bob, err := st.CreateAccount()
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	log.Infow("demo", "account", alice.AccountID(), "balance", st.Balance(alice.AccountID()))
	log.Infow("demo", "account", bob.AccountID(), "balance", st.Balance(bob.AccountID()))

	tx, err := st.SubmitTransaction(alice.Secret(), bob.AccountID(), cfg.Demo.TransferValue)
	if err != nil {
		return fmt.Errorf("submitting transaction: %w", err)
	}
	log.Infow("demo", "status", "transfer pending", "tx", tx.ID, "value", tx.Value, "mempool", st.MempoolLength())

	// An oversized transfer must be rejected and leave the pool alone.
	if _, err := st.SubmitTransaction(bob.Secret(), alice.AccountID(), cfg.Demo.OversizedValue); !errors.Is(err, state.ErrInsufficientBalance) {
		return fmt.Errorf("oversized transfer was not rejected: %v", err)
	}
	log.Infow("demo", "status", "oversized transfer rejected", "mempool", st.MempoolLength())

	// Mine the pending batch under an external deadline. Exceeding it
	// means mining was aborted and the transactions remain queued.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Ledger.MineTimeout)
	defer cancel()

	block, err := st.MineNewBlock(ctx)
	if err != nil {
		return fmt.Errorf("mining: %w", err)
	}
	log.Infow("demo", "status", "block mined", "number", block.Header.Number, "hash", block.BlockHash, "nonce", block.Header.Nonce)

	for _, account := range st.AllBalances() {
		log.Infow("demo", "account", account.AccountID, "balance", account.Balance)
	}

	if err := st.ValidateChain(); err != nil {
		return fmt.Errorf("chain verification: %w", err)
	}
	log.Infow("demo", "status", "chain verified", "blocks", len(st.RetrieveBlocks()))

	return nil
}
