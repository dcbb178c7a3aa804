// Package driving defines the interfaces that adapters call INTO the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI depends on these interfaces; services implement them.
package driving
