package container

import "github.com/cespare/xxhash/v2"

func fingerprint(buf []byte) uint64 {
	return xxhash.Sum64(buf)
}
