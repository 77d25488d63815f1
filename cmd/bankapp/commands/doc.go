// Package commands defines the bankapp CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - run    Interactive terminal simulation of the app's navigation
//   - route  Parse a deep-link URI and print the dispatch plan
//   - serve  Development HTTP feed that forwards deep links into a live app
//
// # Implementation
//
// The root command loads .env, reads the TOML config, and builds the full
// dependency graph (services, keychain, coordinator tree) before any
// subcommand runs, so handlers share one wired app context.
package commands
