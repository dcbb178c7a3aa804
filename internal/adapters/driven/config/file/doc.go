// Package file provides the TOML-backed configuration store used by the
// portalcheck CLI. Keys use dot notation ("directory.table") and are written
// back to disk as nested tables.
package file
