// Package main hosts the cuibono CLI.
//
// The Cobra command tree loads a case file, runs it through a fresh
// analysis session and prints the conclusion as a report, a table
// breakdown or JSON. Configuration comes from the environment (see
// internal/config); flags override it per invocation.
package main
