package models

// TenantActivityStatus is the storage state of a tenant.
type TenantActivityStatus string

const (
	TenantHot    TenantActivityStatus = "HOT"
	TenantCold   TenantActivityStatus = "COLD"
	TenantFrozen TenantActivityStatus = "FROZEN"
)

// Tenant is a named partition of a multi-tenant class.
type Tenant struct {
	Name           string               `json:"name"`
	ActivityStatus TenantActivityStatus `json:"activityStatus,omitempty"`
}

// NewTenant returns a HOT tenant.
func NewTenant(name string) Tenant {
	return Tenant{Name: name, ActivityStatus: TenantHot}
}

// WithActivityStatus returns t with status set.
func (t Tenant) WithActivityStatus(status TenantActivityStatus) Tenant {
	t.ActivityStatus = status
	return t
}

// ShardStatus is the write state of a shard.
type ShardStatus string

const (
	ShardReady    ShardStatus = "READY"
	ShardReadOnly ShardStatus = "READONLY"
)

type Shard struct {
	Name   string      `json:"name"`
	Status ShardStatus `json:"status"`
}
