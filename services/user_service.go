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

const selectUsers = `
	SELECT ua.user_id, ua.phone_number, ua.email, ud.name, to_char(ud.dob, 'YYYY-MM-DD'),
	       ud.address, ud.pincode, ud.category_id, uc.category, ud.created_at
	FROM users_auth ua
	JOIN user_details ud ON ud.user_id = ua.user_id
	JOIN user_category uc ON uc.category_id = ud.category_id`

type UserService struct {
	db  *sql.DB
	ids *storage.Allocator
}

func NewUserService(db *sql.DB, ids *storage.Allocator) *UserService {
	return &UserService{db: db, ids: ids}
}

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(&u.UserID, &u.PhoneNumber, &u.Email, &u.Name, &u.DOB,
		&u.Address, &u.Pincode, &u.CategoryID, &u.Category, &u.CreatedAt)
	return u, err
}

func (s *UserService) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	var cond conditions
	cond.eq("ud.category_id", filter.CategoryID)
	rows, err := s.db.QueryContext(ctx, selectUsers+cond.where()+" ORDER BY ua.user_id", cond.args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	u, err := scanUser(s.db.QueryRowContext(ctx, selectUsers+" WHERE ua.user_id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("user", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Create stores the auth and details rows together and returns the new user id.
func (s *UserService) Create(ctx context.Context, req models.CreateUserRequest) (int64, error) {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	var id storage.Key
	err = s.ids.RetryOnCollision(ctx, func() error {
		return storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
			if err := storage.RefCategory.Check(ctx, tx, req.CategoryID); err != nil {
				return err
			}
			key, err := s.ids.Allocate(ctx, tx)
			if err != nil {
				return err
			}
			id = key

			if _, err := tx.ExecContext(ctx,
				`INSERT INTO users_auth (user_id, phone_number, email, password) VALUES ($1, $2, $3, $4)`,
				key, req.PhoneNumber, req.Email, hash); err != nil {
				return fmt.Errorf("insert users_auth: %w", err)
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO user_details (user_id, name, dob, address, pincode, category_id) VALUES ($1, $2, $3, $4, $5, $6)`,
				key, req.Name, req.DOB, req.Address, req.Pincode, req.CategoryID); err != nil {
				return fmt.Errorf("insert user_details: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return 0, classifyWrite(err)
	}
	return id.Int(), nil
}

// Update overwrites both rows. The password hash only changes when one is supplied.
func (s *UserService) Update(ctx context.Context, id int64, req models.UpdateUserRequest) error {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	var hash *string
	if req.Password != nil {
		h, err := utils.HashPassword(*req.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		hash = &h
	}

	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := storage.RefCategory.Check(ctx, tx, req.CategoryID); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx,
			`UPDATE users_auth SET phone_number = $2, email = $3, password = COALESCE($4, password) WHERE user_id = $1`,
			id, req.PhoneNumber, req.Email, hash)
		if err != nil {
			return fmt.Errorf("update users_auth: %w", err)
		}
		if err := rowsAffected(res, "user", id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE user_details SET name = $2, dob = $3, address = $4, pincode = $5, category_id = $6 WHERE user_id = $1`,
			id, req.Name, req.DOB, req.Address, req.Pincode, req.CategoryID); err != nil {
			return fmt.Errorf("update user_details: %w", err)
		}
		return nil
	})
	return classifyWrite(err)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM user_details WHERE user_id = $1`, id); err != nil {
			return fmt.Errorf("delete user_details: %w", err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM users_auth WHERE user_id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete users_auth: %w", err)
		}
		return rowsAffected(res, "user", id)
	})
	return classifyDelete(err)
}

// CategoryOf returns the user's category id, or ErrNotFound.
func (s *UserService) CategoryOf(ctx context.Context, id int64) (int64, error) {
	ctx, cancel := utils.GetFastQueryContext(ctx)
	defer cancel()

	var category int64
	err := s.db.QueryRowContext(ctx, `SELECT category_id FROM user_details WHERE user_id = $1`, id).Scan(&category)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, notFound("user", id)
	}
	if err != nil {
		return 0, fmt.Errorf("user category: %w", err)
	}
	return category, nil
}
