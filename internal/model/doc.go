package model

// Package model defines the clock face data structures shared by every layer:
// the persisted placement, the rendered clock strings, the ephemeral drag
// session and the pointer events delivered by the host.
