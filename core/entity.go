package core

// Entity is a unique identifier for an entity, 0 is never allocated
type Entity uint64

// NoEntity is the zero identity
const NoEntity Entity = 0
