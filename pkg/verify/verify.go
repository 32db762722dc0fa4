package verify

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/PxyUp/provably_fair/pkg/config"
	"github.com/PxyUp/provably_fair/pkg/logger"
	"github.com/PxyUp/provably_fair/pkg/random"
	"golang.org/x/sync/errgroup"
)

var (
	ErrResultMismatch     = errors.New("draw result mismatch")
	ErrCommitmentMismatch = errors.New("commitment mismatch")
	ErrShuffleMismatch    = errors.New("shuffle mismatch")
	ErrTooManyDraws       = errors.New("too many draws in batch")
)

type Verifier struct {
	log      logger.Logger
	workers  int
	maxDraws int
}

func New(log logger.Logger, workers int, maxDraws int) *Verifier {
	if workers < 1 {
		workers = 1
	}

	return &Verifier{
		log:      log,
		workers:  workers,
		maxDraws: maxDraws,
	}
}

// NewFromConfig builds a verifier from the environment settings.
func NewFromConfig() *Verifier {
	log := logger.NewLogger(config.Config.LoggerLevel)
	return New(log.With("component", "verify"), config.Config.VerifyWorkers, config.Config.MaxBatchDraws)
}

func (v *Verifier) VerifyCommitment(serverSeed, commitment string) error {
	want := Commit(serverSeed)
	if subtle.ConstantTimeCompare([]byte(want), []byte(strings.ToLower(commitment))) != 1 {
		v.log.Warnw("commitment mismatch", "commitment", commitment)
		return ErrCommitmentMismatch
	}

	return nil
}

func (v *Verifier) Verify(d Draw) error {
	got, err := random.RandLong(d.Digest(), d.Bound)
	if err != nil {
		v.log.Warnw("cant recompute draw", "nonce", d.Nonce, "bound", d.Bound, "error", err.Error())
		return err
	}

	if got != d.Result {
		v.log.Warnw("draw mismatch", "hash", d.Hash, "nonce", d.Nonce, "published", d.Result, "computed", got)
		return fmt.Errorf("%w: nonce %d published %d, computed %d", ErrResultMismatch, d.Nonce, d.Result, got)
	}

	return nil
}

// VerifyAll checks every draw, stopping at the first failure.
func (v *Verifier) VerifyAll(ctx context.Context, draws []Draw) error {
	if len(draws) > v.maxDraws {
		return fmt.Errorf("%w: %d > %d", ErrTooManyDraws, len(draws), v.maxDraws)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(v.workers)

	for i, d := range draws {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			if err := v.Verify(d); err != nil {
				return fmt.Errorf("draw %d: %w", i, err)
			}

			return nil
		})
	}

	err := g.Wait()
	v.log.Debugw("batch verified", "draws", len(draws), "ok", err == nil)
	return err
}

// VerifyShuffle recomputes the shuffle of items and compares it to the published order.
func VerifyShuffle[T comparable](items, published []T, hash string) error {
	want, err := random.Shuffle(items, hash)
	if err != nil {
		return err
	}

	if len(want) != len(published) {
		return fmt.Errorf("%w: %d items published, %d expected", ErrShuffleMismatch, len(published), len(want))
	}

	for i := range want {
		if want[i] != published[i] {
			return fmt.Errorf("%w: position %d", ErrShuffleMismatch, i)
		}
	}

	return nil
}
