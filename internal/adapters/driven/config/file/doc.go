// Package file provides a TOML-backed ConfigStore. Settings live in
// ~/.citelens/config.toml with nested tables flattened to dot-notation
// keys (engine.base_url, fetcher.burst).
package file
