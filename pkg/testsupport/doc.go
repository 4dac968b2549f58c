// Package testsupport holds fixtures and markup helpers shared by package
// tests.
package testsupport
