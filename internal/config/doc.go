// Package config loads and validates the vtwire configuration file.
//
// Configuration is a single TOML file with two sections: [transport]
// selects and tunes the byte stream to the terminal, and [log]
// controls structured logging. Every field has a working default, so
// a missing file is not an error and an empty file yields a usable
// configuration.
//
// # Live reload
//
// Watch monitors the file and delivers a freshly loaded Config on
// every change. The watcher holds its watch on the parent directory
// rather than the file itself, so editors that save by writing a
// temporary file and renaming it over the original do not silently
// detach the watch. Reloads that fail to parse or validate are
// reported on the error channel and the previous configuration stays
// in effect.
package config
