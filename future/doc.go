// Package future provides a single-value asynchronous result: a computation
// that eventually settles with exactly one of a value or an error.
//
// A future is created with Run, which starts the computation on a derived
// cancellable context:
//
//	f := future.Run(ctx, func(ctx context.Context) (int, error) {
//	    return slowFetch(ctx)
//	})
//
//	v, err := f.Await(ctx)
//
// Cancel aborts a pending computation through its context; a computation
// that honors its context then settles with the context's error.
package future
