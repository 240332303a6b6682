// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It connects to the file-crypt server, picks the page variant the server
// runs, and hands control to the terminal UI.
package client
