// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package brain holds the pure, I/O-free rules of the application:
// keyword categorization of notes, extraction of command-like actions from
// chat text, cycle phase buckets, collection naming and field templates, the
// calendar based cosmic calculator and the canned assistant texts.
//
// Everything here is deterministic and safe for concurrent use.
package brain
