// Package store provides the map collaborators the navigation core reads
// from: an in-memory MemoryStore and a loader for authored map documents.
//
// MemoryStore keeps one immutable *core.Map per id. AllMaps returns a
// cached, id-sorted snapshot that is rebuilt lazily after any Put or
// Delete; callers never see a snapshot older than their last write.
//
// Documents are YAML (.yaml, .yml, multiple maps per file separated by
// "---") or JSON (.json, one map per file). Every document is checked with
// struct-tag validation before core.NewMap builds it.
package store
