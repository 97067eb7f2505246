package datastruct

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// String is a string key with an xxhash64 based hash.
// The empty string is the sentinel key.
type String string

var _ Hasher = String("")

func (s String) Hash() uint64 { return xxhash.Sum64String(string(s)) }

func (s String) String() string { return string(s) }

// Int is an int key that hashes to its own two's complement bits.
// Negative values therefore still land in a non-negative slot.
type Int int

func (i Int) Hash() uint64 { return uint64(i) }

func (i Int) String() string { return strconv.Itoa(int(i)) }

type Int64 int64

func (i Int64) Hash() uint64 { return uint64(i) }

type Uint64 uint64

func (i Uint64) Hash() uint64 { return uint64(i) }
