// Package mocks provide a pregenerated gomock file for working with datastruct tests.
// The primary goal of this package is to observe how a HashTable consults the hash of its keys,
// which is hard to see through real key types.
package mocks

//go:generate mockgen -package mocks -destination MockHasher.go github.com/collectionkit/collections/pkg/datastruct Hasher
