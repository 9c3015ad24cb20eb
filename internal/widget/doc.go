package widget

// Package widget implements the clock face behaviour independent of any
// toolkit: the drag/scroll controller and the enable/disable lifecycle. The
// host supplies the display actor, layers, monitor geometry and timer through
// the interfaces in interfaces.go.
