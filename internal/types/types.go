package types

// EntityID — уникальный идентификатор сущности в пределах одного матча.
type EntityID uint64
