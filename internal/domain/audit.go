package domain

import (
	"time"

	"github.com/google/uuid"
)

// Audit is the envelope embedded in every entity. Timestamps and actor ids
// are stamped by the unit of work at commit time, never by the entity itself.
type Audit struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime:false" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime:false" json:"updated_at"`
	IsDeleted bool      `gorm:"not null;default:false;column:is_deleted;index" json:"is_deleted"`
	CreatedBy uuid.UUID `gorm:"type:uuid;column:created_by" json:"created_by"`
	UpdatedBy uuid.UUID `gorm:"type:uuid;column:updated_by" json:"updated_by"`
}

func newID() uuid.UUID { return uuid.New() }

// AuditEnvelope exposes the envelope through the embedding entity.
func (a *Audit) AuditEnvelope() *Audit { return a }

// Delete flips the soft-delete flag. The row stays in storage.
func (a *Audit) Delete() { a.IsDeleted = true }

// Restore reverses a soft delete.
func (a *Audit) Restore() { a.IsDeleted = false }
