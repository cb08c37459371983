// Package token scans CS wire records and decodes their scalar payloads.
//
// Every record starts with a one byte [Marker]. Branch and root records
// carry a 4-digit name length and the name; value and attribute records
// add an [Indicator] and a payload. Text and raw payloads are prefixed
// with a 12-digit byte count, all others run to the next newline.
//
// [Scan] is chunk tolerant: given a buffer holding only part of a record it
// reports that nothing can be consumed yet, so callers can feed bytes as they
// arrive.
package token
