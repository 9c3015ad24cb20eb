package config

// Package config holds user configuration: the JSON placement file written on
// every drag and scroll, and the preference-backed settings (scale limits,
// layer profile, language).
