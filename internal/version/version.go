// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.4.0"

// Milestones:
// 0.4.0 - Rise-time hints in search results, scene JSON export, config file
// 0.3.0 - Planet ephemeris from Keplerian elements, magnitude-scaled glyphs
// 0.2.0 - Virtual clock with rate control, CSV catalog loading, geolocation
// 0.1.0 - Initial release: sky view TUI, builtin star catalog, headless summary
