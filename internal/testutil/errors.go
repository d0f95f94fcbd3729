// Package testutil provides testing utilities for wic.
//
// This package contains mock errors and test helpers used across test files.
// It should only be imported by test files (*_test.go).
package testutil

import "errors"

// Mock errors for testing purposes.
// These errors are used to simulate various failure scenarios in tests.
var (
	// ErrMockBuildFailed indicates a mock build job failed (used in tests).
	ErrMockBuildFailed = errors.New("build failed")

	// ErrMockLookupFailed indicates a mock variable lookup failed (used in tests).
	ErrMockLookupFailed = errors.New("lookup failed")

	// ErrMockEngineFailed indicates a mock engine invocation failed (used in tests).
	ErrMockEngineFailed = errors.New("engine failed")

	// ErrMockNotFound indicates a mock resource was not found (used in tests).
	ErrMockNotFound = errors.New("not found")
)
