package compactor

import (
	"context"
	"strconv"

	"github.com/buildbarn/bb-defrag/pkg/blockstore"
	"github.com/buildbarn/bb-storage/pkg/util"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// ObserverFactory creates the Observer that is used while compacting a
// store using a given policy.
type ObserverFactory func(policy Policy) Observer

// NopObserverFactory is an ObserverFactory that always returns
// NopObserver.
func NopObserverFactory(policy Policy) Observer {
	return NopObserver
}

// Result of compacting a store using a single policy.
type Result struct {
	Policy   Policy
	Checksum uint64
}

// Runner compacts a store using one or more policies. Every policy
// operates on its own copy of the store, meaning that policies never
// observe each other's mutations and the original store is left
// untouched.
type Runner struct {
	tracer          trace.Tracer
	observerFactory ObserverFactory
}

// NewRunner creates a Runner that creates an OpenTelemetry span for
// every policy that is applied.
func NewRunner(tracerProvider trace.TracerProvider, observerFactory ObserverFactory) *Runner {
	return &Runner{
		tracer:          tracerProvider.Tracer("github.com/buildbarn/bb-defrag/pkg/compactor"),
		observerFactory: observerFactory,
	}
}

// Run all provided policies against a store. As the policies share no
// state, they are run concurrently. Results are returned in the same
// order as the policies.
func (r *Runner) Run(ctx context.Context, store *blockstore.BlockStore, policies []Policy) ([]Result, error) {
	results := make([]Result, len(policies))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, policy := range policies {
		storeCopy := store.Clone()
		group.Go(func() error {
			checksum, err := r.runPolicy(groupCtx, storeCopy, policy)
			if err != nil {
				return util.StatusWrapf(err, "Failed to compact using %s policy", policy)
			}
			results[i] = Result{
				Policy:   policy,
				Checksum: checksum,
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) runPolicy(ctx context.Context, store *blockstore.BlockStore, policy Policy) (uint64, error) {
	_, span := r.tracer.Start(ctx, "Compactor.Run", trace.WithAttributes(
		attribute.String("policy", policy.String()),
		attribute.Int("block_count", store.Len()),
	))
	defer span.End()

	if err := Compact(store, policy, NewTracingObserver(r.observerFactory(policy), span)); err != nil {
		span.RecordError(err)
		return 0, err
	}
	checksum := blockstore.Checksum(store)
	span.SetAttributes(attribute.String("checksum", strconv.FormatUint(checksum, 10)))
	return checksum, nil
}
