// Package fsmcodec provides interchangeable textual encodings for the fsm
// package's definition DTO. The engine itself is encoding-agnostic; this
// package covers the two common cases, JSON and YAML, with identical
// round-trip semantics: decode(encode(dto)) reproduces the DTO
// field-for-field.
package fsmcodec
