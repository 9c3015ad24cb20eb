package platform

// Package platform contains OS integration glue: per-user config locations,
// filesystem helpers used by the placement store, and opening folders in the
// system file manager.
