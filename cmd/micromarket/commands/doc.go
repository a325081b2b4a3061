// Package commands defines the micromarket CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - login      Log in and persist the session
//   - register   Create an account and log in
//   - logout     Clear the persisted session
//   - whoami     Show the current session
//   - suppliers  List supplier stalls
//   - products   List a supplier's catalog
//   - cart       add / show / pull the shopping cart
//   - seed       Seed the backend with demo data
//
// # Implementation
//
// The root command builds the dependency graph (session store, backend
// client, services) and restores the persisted session before any
// subcommand runs, so handlers share one app context. Configuration comes
// from flags first, then MICROMARKET_* environment variables (optionally
// from a .env file), then defaults.
package commands
