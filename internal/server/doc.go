// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the transport servers of cosmic-brain.
//
// It starts the HTTP API and the gRPC health server when their addresses are
// configured, waits for a termination signal and shuts both down gracefully.
package server
