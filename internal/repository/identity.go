package repository

import "github.com/google/uuid"

// Record identifiers are generated here, at construction time, rather
// than by schema defaults or process-wide counters. Random UUIDs need
// no shared state and stay unique across restarts and replicas.

func NewUserID() string     { return uuid.NewString() }
func NewShopID() string     { return uuid.NewString() }
func NewProductID() string  { return uuid.NewString() }
func NewWorkerID() string   { return uuid.NewString() }
func NewDeliveryID() string { return uuid.NewString() }
