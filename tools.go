//go:build tools

package tools

// This file tracks CLI tools used during development.
// It is not compiled into the binary.
//
// - github.com/pressly/goose/v3/cmd/goose (go tool goose; also wrapped by `ksar migrate`)
// - github.com/matryer/moq (regenerates *_mock_test.go via go:generate)
