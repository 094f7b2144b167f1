// Package keyhash derives cache keys from arbitrary argument lists.
//
// Arguments are first rendered to a canonical byte form (see [Canonical]) and
// then condensed by a named [Hasher] driver. Four drivers ship with this
// package: [PlainHasher], [Blake2bHasher], [SHA3Hasher] and [XXHasher].
// The [Manager] is a driver registry and dispatcher. Register named hashers,
// choose a default, then derive keys through the Manager.
//
// # Quick start
//
//	m, err := keyhash.NewDefaultManager() // blake2b default, all drivers registered
//	if err != nil { log.Fatal(err) }
//
//	k, _ := m.Key("user", 42, map[string]int{"b": 2, "a": 1})
//
// The package-level [Key] uses a shared default Manager.
//
// # Equality
//
// Two argument lists yield the same key when their canonical forms match.
// The canonical form is JSON, so structurally equal values collide on
// purpose and fields that encoding/json does not see (unexported fields,
// fields tagged "-") do not take part in the key.
package keyhash
