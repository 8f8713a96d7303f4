// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive wallet application runtime.
//
// It wires terminal UI flows, wallet services, and the background balance
// refresh job into a single process lifecycle.
package client
