// Package cli implements the command-line interface for termcal.
//
// The cli package provides the Cobra-based CLI that builds a term model
// from the registrar's calendar pages and writes its facts to a Google
// Calendar, with text/JSON dry-run output for inspecting the fact list
// before anything is written.
package cli
