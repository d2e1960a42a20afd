// Package spdx provides a client for the SPDX license registry. It fetches
// the license summary list and per-license details over HTTP, with responses
// cached on disk per standard HTTP caching semantics. Use New to create a
// Client; Licenses returns the (memoized) summary list and Details fetches
// the full text and metadata for one license.
package spdx
