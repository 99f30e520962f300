// Package emaillogs is the append-only audit trail of outbound email.
package emaillogs

import (
	"context"

	"github.com/gyulist/gyulist/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, l *models.EmailLog) error
	List(ctx context.Context, email string, limit, offset int) ([]models.EmailLog, int, error)
}
