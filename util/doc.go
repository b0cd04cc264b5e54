// Package util provides small generic helpers shared across llmrest packages.
package util
