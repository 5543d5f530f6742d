package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"agriadmin/models"
	"agriadmin/storage"
	"agriadmin/utils"
)

const selectSubsidies = `
	SELECT s.id, s.title, s.description, s.link, s.state_id, st.state_name, s.created_at
	FROM subsidies s
	LEFT JOIN state st ON st.state_id = s.state_id`

type SubsidyService struct {
	db  *sql.DB
	ids *storage.Allocator
}

func NewSubsidyService(db *sql.DB, ids *storage.Allocator) *SubsidyService {
	return &SubsidyService{db: db, ids: ids}
}

func scanSubsidy(row interface{ Scan(...any) error }) (models.Subsidy, error) {
	var s models.Subsidy
	err := row.Scan(&s.ID, &s.Title, &s.Description, &s.Link, &s.StateID, &s.StateName, &s.CreatedAt)
	return s, err
}

func (s *SubsidyService) List(ctx context.Context, filter models.SubsidyFilter) ([]models.Subsidy, error) {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	var cond conditions
	cond.eq("s.state_id", filter.StateID)
	rows, err := s.db.QueryContext(ctx, selectSubsidies+cond.where()+" ORDER BY s.created_at DESC, s.id", cond.args...)
	if err != nil {
		return nil, fmt.Errorf("list subsidies: %w", err)
	}
	defer rows.Close()

	subsidies := []models.Subsidy{}
	for rows.Next() {
		sub, err := scanSubsidy(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subsidy: %w", err)
		}
		subsidies = append(subsidies, sub)
	}
	return subsidies, rows.Err()
}

func (s *SubsidyService) Get(ctx context.Context, id int64) (*models.Subsidy, error) {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	sub, err := scanSubsidy(s.db.QueryRowContext(ctx, selectSubsidies+" WHERE s.id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("subsidy", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get subsidy: %w", err)
	}
	return &sub, nil
}

func (s *SubsidyService) Create(ctx context.Context, req models.SubsidyRequest) (int64, error) {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	var id storage.Key
	err := s.ids.RetryOnCollision(ctx, func() error {
		return storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
			if err := storage.CheckAll(ctx, tx, storage.Bound{Ref: storage.RefState, Value: req.StateID}); err != nil {
				return err
			}
			key, err := s.ids.Allocate(ctx, tx)
			if err != nil {
				return err
			}
			id = key
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO subsidies (id, title, description, link, state_id) VALUES ($1, $2, $3, $4, $5)`,
				key, req.Title, req.Description, req.Link, req.StateID); err != nil {
				return fmt.Errorf("insert subsidy: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return 0, classifyWrite(err)
	}
	return id.Int(), nil
}

func (s *SubsidyService) Update(ctx context.Context, id int64, req models.SubsidyRequest) error {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := storage.CheckAll(ctx, tx, storage.Bound{Ref: storage.RefState, Value: req.StateID}); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx,
			`UPDATE subsidies SET title = $2, description = $3, link = $4, state_id = $5 WHERE id = $1`,
			id, req.Title, req.Description, req.Link, req.StateID)
		if err != nil {
			return fmt.Errorf("update subsidy: %w", err)
		}
		return rowsAffected(res, "subsidy", id)
	})
	return classifyWrite(err)
}

func (s *SubsidyService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	res, err := s.db.ExecContext(ctx, `DELETE FROM subsidies WHERE id = $1`, id)
	if err != nil {
		return classifyDelete(fmt.Errorf("delete subsidy: %w", err))
	}
	return rowsAffected(res, "subsidy", id)
}
