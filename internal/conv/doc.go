// Package conv provides checked integer arithmetic for address-to-slot mapping.
//
// Every function reports an error instead of wrapping around. A wrapped value
// would silently map an address to the wrong bit, so callers treat these
// errors as fatal for the operation that produced them.
//
// Use cases:
//   - Sizing a segment's bit vector from its byte length
//   - Narrowing an address offset to the 32-bit slot index type
//   - Deriving the quantum from the platform pointer width
package conv
