// Menuscore - Restaurant Recommendations and Dynamic Menu Pricing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuscore

// Command menuctl generates pricing history, trains and queries the pricing
// model offline, and seeds the demo catalog. It reads the same configuration
// (config.yaml and environment variables) as the server.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
