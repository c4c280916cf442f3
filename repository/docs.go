// Package repository offers a generic in memory repository for entities with integer ids.
//
// The MemoryRepository keeps its collection in insertion order and allocates ids
// from a monotonic counter, so an id is never handed out twice for the lifetime of the
// repository, even if the entity holding it got deleted.
//
// A MemoryRepository offers the methods listed in Repository. If that is not enough,
// it is possible to extend it with new methods by embedding it into your own repository.
// The embedded Mutex is exported, so that your methods can lock the same collection.
package repository
