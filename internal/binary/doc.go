// Package binary provides low-level little-endian I/O for Surfer grid files.
//
// Both binary Surfer layouts are little-endian with fixed-width fields:
// 2- and 4-byte signed integers, IEEE 754 singles and doubles, and 4-byte
// ASCII tags. [Reader] decodes these from an [io.ReaderAt] with an explicit
// position and an upper bound on readable bytes, so a read that would run
// past the end of the source fails with [ErrShortRead] instead of returning
// partial data.
//
// [Writer] is the mirror image and exists to build byte images in tests.
package binary
