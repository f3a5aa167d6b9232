package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/repmhq/repm-backend/internal/domain"
	"github.com/repmhq/repm-backend/internal/pkg/logger"
	"github.com/repmhq/repm-backend/internal/requestdata"
)

// Visibility makes the soft-delete scoping decision explicit at every call
// site instead of implying it from which handle was used.
type Visibility int

const (
	VisibilityActive Visibility = iota
	VisibilityDeleted
	VisibilityAll
)

type changeKind int

const (
	changeInsert changeKind = iota
	changeUpdate
	changeSoftDelete
	changeRestore
	changeHardDelete
)

type change struct {
	kind  changeKind
	model any
	audit *domain.Audit
}

// UnitOfWork stages entity changes and applies them atomically on Commit,
// stamping audit fields as it goes. One instance per logical operation;
// repositories for different entity types share it so a cross-entity change
// set commits together.
type UnitOfWork struct {
	db      *gorm.DB
	log     *logger.Logger
	changes []change
}

func NewUnitOfWork(db *gorm.DB, baseLog *logger.Logger) *UnitOfWork {
	return &UnitOfWork{db: db, log: baseLog.With("component", "UnitOfWork")}
}

func (u *UnitOfWork) stage(kind changeKind, model any, audit *domain.Audit) {
	u.changes = append(u.changes, change{kind: kind, model: model, audit: audit})
}

// Commit applies all staged changes in one transaction. New rows get
// creation and update stamps, modified rows update stamps only; the actor
// comes from the request context, falling back to the unknown-actor sentinel.
// The returned bool means "something changed", not a row count. Store errors
// propagate untouched.
func (u *UnitOfWork) Commit(ctx context.Context) (bool, error) {
	if len(u.changes) == 0 {
		return false, nil
	}

	actor := requestdata.ActorID(ctx)
	now := time.Now().UTC()

	var affected int64
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range u.changes {
			switch c.kind {
			case changeInsert:
				stampInsert(c.audit, actor, now)
				res := tx.Omit(clause.Associations).Create(c.model)
				if res.Error != nil {
					return res.Error
				}
				affected += res.RowsAffected
			case changeUpdate:
				stampUpdate(c.audit, actor, now)
				res := tx.Omit(clause.Associations).Save(c.model)
				if res.Error != nil {
					return res.Error
				}
				affected += res.RowsAffected
			case changeSoftDelete:
				c.audit.Delete()
				stampUpdate(c.audit, actor, now)
				res := tx.Model(c.model).Updates(map[string]any{
					"is_deleted": true,
					"updated_at": c.audit.UpdatedAt,
					"updated_by": c.audit.UpdatedBy,
				})
				if res.Error != nil {
					return res.Error
				}
				affected += res.RowsAffected
			case changeRestore:
				c.audit.Restore()
				stampUpdate(c.audit, actor, now)
				res := tx.Model(c.model).Updates(map[string]any{
					"is_deleted": false,
					"updated_at": c.audit.UpdatedAt,
					"updated_by": c.audit.UpdatedBy,
				})
				if res.Error != nil {
					return res.Error
				}
				affected += res.RowsAffected
			case changeHardDelete:
				res := tx.Delete(c.model)
				if res.Error != nil {
					return res.Error
				}
				affected += res.RowsAffected
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	u.changes = nil
	return affected > 0, nil
}

// Auditable is satisfied by every entity embedding domain.Audit.
type Auditable interface {
	AuditEnvelope() *domain.Audit
}

// Repository is the per-entity-type handle over a shared unit of work.
type Repository[T any, PT interface {
	*T
	Auditable
}] struct {
	uow *UnitOfWork
}

func NewRepository[T any, PT interface {
	*T
	Auditable
}](uow *UnitOfWork) *Repository[T, PT] {
	return &Repository[T, PT]{uow: uow}
}

// Query returns a scoped query handle for the given visibility.
func (r *Repository[T, PT]) Query(ctx context.Context, v Visibility) *gorm.DB {
	q := r.uow.db.WithContext(ctx).Model(PT(new(T)))
	switch v {
	case VisibilityDeleted:
		return q.Where("is_deleted = ?", true)
	case VisibilityAll:
		return q
	default:
		return q.Where("is_deleted = ?", false)
	}
}

// Active scopes to non-soft-deleted rows, for fetch-then-mutate flows.
func (r *Repository[T, PT]) Active(ctx context.Context) *gorm.DB {
	return r.Query(ctx, VisibilityActive)
}

// ReadOnly scopes to non-soft-deleted rows for traversal without mutation
// intent; the fresh session keeps accumulated conditions from leaking.
func (r *Repository[T, PT]) ReadOnly(ctx context.Context) *gorm.DB {
	return r.Query(ctx, VisibilityActive).Session(&gorm.Session{})
}

// Deleted scopes to soft-deleted rows, for administrative and audit use.
func (r *Repository[T, PT]) Deleted(ctx context.Context) *gorm.DB {
	return r.Query(ctx, VisibilityDeleted)
}

// GetByID returns nil without error when the id does not resolve to an
// active row; turning that into a domain error is the caller's job.
func (r *Repository[T, PT]) GetByID(ctx context.Context, id uuid.UUID) (PT, error) {
	return r.getByID(ctx, id, VisibilityActive)
}

func (r *Repository[T, PT]) GetByIDReadOnly(ctx context.Context, id uuid.UUID) (PT, error) {
	return r.getByID(ctx, id, VisibilityActive)
}

// GetByIDDeleted looks up within the soft-deleted set.
func (r *Repository[T, PT]) GetByIDDeleted(ctx context.Context, id uuid.UUID) (PT, error) {
	return r.getByID(ctx, id, VisibilityDeleted)
}

func (r *Repository[T, PT]) getByID(ctx context.Context, id uuid.UUID, v Visibility) (PT, error) {
	out := PT(new(T))
	err := r.Query(ctx, v).Where("id = ?", id).First(out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByIDRange may return fewer results than requested ids; missing ids are
// silently omitted.
func (r *Repository[T, PT]) GetByIDRange(ctx context.Context, ids []uuid.UUID) ([]PT, error) {
	var out []PT
	if len(ids) == 0 {
		return out, nil
	}
	if err := r.Query(ctx, VisibilityActive).
		Where("id IN ?", ids).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository[T, PT]) Insert(entity PT) {
	r.uow.stage(changeInsert, entity, entity.AuditEnvelope())
}

func (r *Repository[T, PT]) InsertMany(entities []PT) {
	for _, e := range entities {
		r.Insert(e)
	}
}

// Update stages a fetched-and-mutated entity for the next commit.
func (r *Repository[T, PT]) Update(entity PT) {
	r.uow.stage(changeUpdate, entity, entity.AuditEnvelope())
}

func (r *Repository[T, PT]) SoftDelete(entity PT) {
	r.uow.stage(changeSoftDelete, entity, entity.AuditEnvelope())
}

func (r *Repository[T, PT]) SoftDeleteMany(entities []PT) {
	for _, e := range entities {
		r.SoftDelete(e)
	}
}

// Restore reverses a soft delete. No current flow uses it, but the operation
// stays available.
func (r *Repository[T, PT]) Restore(entity PT) {
	r.uow.stage(changeRestore, entity, entity.AuditEnvelope())
}

// HardDelete permanently removes the row, bypassing soft delete. Reserved
// for administrative paths.
func (r *Repository[T, PT]) HardDelete(entity PT) {
	r.uow.stage(changeHardDelete, entity, entity.AuditEnvelope())
}

// Commit delegates to the shared unit of work.
func (r *Repository[T, PT]) Commit(ctx context.Context) (bool, error) {
	return r.uow.Commit(ctx)
}

func stampInsert(a *domain.Audit, actor uuid.UUID, now time.Time) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}
	if a.CreatedBy == uuid.Nil {
		a.CreatedBy = actor
	}
	if a.UpdatedBy == uuid.Nil {
		a.UpdatedBy = actor
	}
}

func stampUpdate(a *domain.Audit, actor uuid.UUID, now time.Time) {
	a.UpdatedAt = now
	a.UpdatedBy = actor
}
