package audit

import (
	"context"
	"log/slog"
	"time"

	domainaudit "hotelcore/internal/domain/audit"
	"hotelcore/internal/infra/repository"
	"hotelcore/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

const recordTimeout = 3 * time.Second

// Recorder persists audit records outside the caller's transaction so a
// failed log write never rolls back the business operation.
type Recorder struct {
	repo *repository.AuditRepository
}

func NewRecorder(pool *pgxpool.Pool) shared.AuditTrail {
	return &Recorder{repo: repository.NewAuditRepository(pool)}
}

func (r *Recorder) Record(ctx context.Context, rec domainaudit.Record) {
	// Detach from the request context so cancellation after the business
	// commit does not drop the log entry.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	if err := r.repo.Insert(ctx, rec); err != nil {
		slog.Warn("audit record dropped",
			"entity_type", rec.EntityType,
			"entity_id", rec.EntityID,
			"action", string(rec.Action),
			"error", err.Error())
	}
}
