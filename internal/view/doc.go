// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package view holds the presentation state of the file-crypt front end.
//
// The page is an explicit set of bindings ([Page]) named after the element
// identifiers of the embedded web page. A [Controller] drives the tab,
// key generation, submission and clipboard flows against those bindings.
// Every flow is split into a Begin step, a blocking exchange and a Finish
// step, so an event loop can run the exchange elsewhere and keep all state
// changes on the loop itself.
package view
