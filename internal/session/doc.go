// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the mutable, session-scoped state of cosmic-brain:
// the tracked cycle day, the collection registry, the window of recently
// captured notes and the in-memory chat histories.
//
// A [State] is created lazily by the [Manager] for every session identifier
// (the X-Session-ID header). Cycle and registry are restored from and saved
// to a [StateStore]; chat histories and the recent window live only in
// memory.
package session
