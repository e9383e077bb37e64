package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"svw.info/sudocheck/internal/domain"
	"svw.info/sudocheck/internal/ports"
)

// Service fronts the validator, filler, and storage for the CLI and
// the HTTP adapter.
type Service struct {
	Validator ports.Validator
	Filler    ports.Filler
	Storage   ports.Storage
	Logger    *zap.Logger
}

func NewService(v ports.Validator, f ports.Filler, st ports.Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{Validator: v, Filler: f, Storage: st, Logger: logger}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Check validates g and reports completeness and validity.
func (u *Service) Check(ctx context.Context, g *domain.Grid) (domain.Report, error) {
	if u.Validator == nil {
		return domain.Report{}, errNotConfigured
	}
	start := time.Now()
	rep, err := u.Validator.Validate(ctx, g)
	if err != nil {
		return domain.Report{}, err
	}
	if u.Logger != nil {
		u.Logger.Debug("check",
			zap.Int("size", g.Size()),
			zap.Bool("complete", rep.Complete),
			zap.Bool("valid", rep.Valid),
			zap.Duration("dur", time.Since(start)),
		)
	}
	return rep, nil
}

// Fill writes sole candidates into g. passes < 1 selects the filler
// default.
func (u *Service) Fill(ctx context.Context, g *domain.Grid, passes int) (domain.FillResult, error) {
	if u.Filler == nil {
		return domain.FillResult{}, errNotConfigured
	}
	start := time.Now()
	res, err := u.Filler.Fill(ctx, g, passes)
	if err != nil {
		return res, err
	}
	if u.Logger != nil {
		u.Logger.Debug("fill",
			zap.Int("size", g.Size()),
			zap.Int("filled", res.Filled),
			zap.Int("passes", res.Passes),
			zap.Duration("dur", time.Since(start)),
		)
	}
	return res, nil
}

// CheckAndFill validates g, fills it only when incomplete, and returns
// the report for the grid as it stands after filling.
func (u *Service) CheckAndFill(ctx context.Context, g *domain.Grid, passes int) (domain.Report, domain.FillResult, error) {
	rep, err := u.Check(ctx, g)
	if err != nil {
		return domain.Report{}, domain.FillResult{}, err
	}
	if rep.Complete {
		return rep, domain.FillResult{}, nil
	}
	res, err := u.Fill(ctx, g, passes)
	if err != nil {
		return rep, res, err
	}
	rep, err = u.Check(ctx, g)
	return rep, res, err
}

// Persistence
func (u *Service) SavePuzzle(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}
func (u *Service) LoadPuzzle(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) ListPuzzles(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
