// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to application settings needed by different components while keeping
// configuration details separate from business logic.
//
// Values come from an optional YAML file (scry-deck.yaml) and from
// environment variables with the SCRY_DECK_ prefix; environment
// variables win.
package config
