// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. .env file (joho/godotenv), without overriding the real environment
//  3. Environment variables
//  4. Command-line flags
//  5. JSON config file
//
// The entry point is [GetStructuredConfig]; each binary then calls
// [StructuredConfig.ValidateServer] or [StructuredConfig.ValidateClient].
package config
