// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background jobs of the terminal client and a
// Workers aggregate that starts and stops them together.
package workers

import "context"

// Worker is a background job bound to a context.
//
// Start launches the job and returns immediately. Calling Start on a running
// worker restarts it. Stop cancels the job and blocks until it has exited;
// it is a no-op on an idle worker.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
