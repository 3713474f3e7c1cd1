// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the cosmic-brain server.
//
// Routes live under /api. Every request passes through panic recovery, trace
// id assignment, access logging, gzip, CORS and session resolution before it
// reaches a handler, which decodes the body, calls the service layer and maps
// service errors to HTTP statuses through errorStatusMap.
package http
