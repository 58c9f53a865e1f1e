// Package prefab implements the stable 32-bit prefab-hash contract the
// batch device-I-O family (lb/lbn/lbs/lbns) dispatches against, and the
// item/filter factory registry that supplies concrete prefabs to hash.
package prefab

import "hash/crc32"

// Hash computes the stable 32-bit prefab hash of name, the contract §6
// requires of every device and item prefab identity string. Reinterpreted
// as a signed int32 at the instruction boundary, matching the reference
// implementation's i32 prefab-hash type.
func Hash(name string) uint32 {
	return crc32.ChecksumIEEE([]byte(name))
}
