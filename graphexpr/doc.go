// SPDX-License-Identifier: MIT

// Package graphexpr reads and writes the compact textual graph notation used
// by the command line and test fixtures.
//
//	expr   = [ "n=" Int ":" ] part { ";" part }
//	part   = run { "," run }
//	run    = Int { "-" Int }
//
// A run u-v-w adds the edges u-v and v-w. Vertices are 0-based.
package graphexpr
