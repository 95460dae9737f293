package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/timetrkkr/timetrkkr/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.UserEntity, error)
	UpdateName(ctx context.Context, id uint64, firstName, lastName string) error
	Delete(ctx context.Context, id uint64) error
	ExistsByName(ctx context.Context, firstName, lastName string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery     = `INSERT INTO users (first_name, last_name, email, is_active, date_added) VALUES (?, ?, ?, TRUE, CURDATE())`
	getUserByIDQuery    = `SELECT id, first_name, last_name, email, is_active, date_added FROM users WHERE id = ?`
	updateUserNameQuery = `UPDATE users SET first_name = ?, last_name = ? WHERE id = ?`
	deleteUserQuery     = `DELETE FROM users WHERE id = ?`
	existsByNameQuery   = `SELECT EXISTS(SELECT 1 FROM users WHERE first_name = ? AND last_name = ?)`
	existsByEmailQuery  = `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery, data.FirstName, data.LastName, data.Email)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return s.GetByID(ctx, data.ID)
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.UserEntity, error) {
	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, getUserByIDQuery, id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateName(ctx context.Context, id uint64, firstName, lastName string) error {
	_, err := s.conn.ExecContext(ctx, updateUserNameQuery, firstName, lastName, id)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteUserQuery, id)
	return err
}

func (s *SQL) ExistsByName(ctx context.Context, firstName, lastName string) (bool, error) {
	var exists bool
	if err := s.conn.GetContext(ctx, &exists, existsByNameQuery, firstName, lastName); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *SQL) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := s.conn.GetContext(ctx, &exists, existsByEmailQuery, email); err != nil {
		return false, err
	}
	return exists, nil
}
