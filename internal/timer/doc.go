package timer

// Package timer provides cancellable interval subscriptions. Ticks are produced
// on a background goroutine and handed to a dispatch function, which in the
// application is fyne.Do so that callbacks run on the UI event loop.
