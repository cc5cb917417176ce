// Package config reads fql settings from env files and the process environment.
package config

// Config provides string settings by key.
type Config interface {
	Get(string) string
	GetOrDefault(string, string) string
}
