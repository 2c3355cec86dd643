package operator

import (
	"context"
	"time"

	"github.com/carson-networks/recon-server/internal/operator/actions"
	"github.com/carson-networks/recon-server/internal/recon"
)

// Processor runs an action in its own transaction.
//
//go:generate mockery --name Processor --inpackage --with-expecter
type Processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Poster posts each reconciliation change as a separate queued action, so
// one rejected posting never undoes the ones before it.
type Poster struct {
	processor Processor
}

var _ recon.Poster = (*Poster)(nil)

func NewPoster(p Processor) *Poster {
	return &Poster{processor: p}
}

func (p *Poster) PostReconciliation(ctx context.Context, posting recon.Posting) error {
	return p.processor.Process(ctx, &actions.PostReconciliation{Posting: posting})
}

func (p *Poster) PostUnreconciliation(ctx context.Context, posting recon.Posting, clearingDate time.Time) error {
	return p.processor.Process(ctx, &actions.PostUnreconciliation{Posting: posting, ClearingDate: clearingDate})
}
