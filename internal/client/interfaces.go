// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "github.com/MKhiriev/cosmic-brain/internal/workers"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end driven by App.
type UI interface {
	// Run blocks until the user quits.
	Run() error

	// Publish delivers a background refresh to the running UI.
	Publish(workers.Refresh)
}
