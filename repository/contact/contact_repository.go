package contact

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/contact-manager/model"
)

// ErrDuplicateEntry is returned when a write trips the compound unique
// index on (email, phone). It closes the race two concurrent creates
// can open between the application-level pre-check and the insert.
var ErrDuplicateEntry = stderrors.New("duplicate contact entry")

const mysqlErrDuplicateEntry = 1062

type SQL struct {
	conn *sqlx.DB
}

type ContactRepository interface {
	List(ctx context.Context) ([]model.ContactEntity, error)
	Get(ctx context.Context, filter *model.ContactFilter) (*model.ContactEntity, error)
	Create(ctx context.Context, data *model.ContactEntity) (*model.ContactEntity, error)
	Update(ctx context.Context, data *model.ContactEntity) error
	Delete(ctx context.Context, id uint64) (bool, error)
}

func NewContactRepository(conn *sqlx.DB) ContactRepository {
	return &SQL{conn: conn}
}

const (
	listContactsQuery  = `SELECT id, name, email, phone, message, created_at, updated_at FROM contacts ORDER BY created_at DESC, id DESC`
	getContactBase     = `SELECT id, name, email, phone, message, created_at, updated_at FROM contacts WHERE true`
	insertContactQuery = `INSERT INTO contacts (name, email, phone, message, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`
	updateContactQuery = `UPDATE contacts SET name = ?, email = ?, phone = ?, message = ?, updated_at = ? WHERE id = ?`
	deleteContactQuery = `DELETE FROM contacts WHERE id = ?`
)

func (s *SQL) List(ctx context.Context) ([]model.ContactEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listContactsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := make([]model.ContactEntity, 0)
	for rows.Next() {
		var entity model.ContactEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		contacts = append(contacts, entity)
	}
	return contacts, rows.Err()
}

func (s *SQL) Get(ctx context.Context, filter *model.ContactFilter) (*model.ContactEntity, error) {
	query := getContactBase
	args := make([]any, 0, 4)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.Phone != "" {
		query += " AND phone = ?"
		args = append(args, filter.Phone)
	}
	if filter.ExcludeID != 0 {
		query += " AND id != ?"
		args = append(args, filter.ExcludeID)
	}

	var entity model.ContactEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Create(ctx context.Context, data *model.ContactEntity) (*model.ContactEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertContactQuery,
		data.Name, data.Email, data.Phone, data.Message, data.CreatedAt, data.UpdatedAt)
	if err != nil {
		return nil, mapWriteError(err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Update(ctx context.Context, data *model.ContactEntity) error {
	_, err := s.conn.ExecContext(ctx, updateContactQuery,
		data.Name, data.Email, data.Phone, data.Message, data.UpdatedAt, data.ID)
	if err != nil {
		return mapWriteError(err)
	}
	return nil
}

// Delete reports whether a row was actually removed so the caller can
// distinguish "gone" from "never existed".
func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	result, err := s.conn.ExecContext(ctx, deleteContactQuery, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func mapWriteError(err error) error {
	var myErr *mysql.MySQLError
	if stderrors.As(err, &myErr) && myErr.Number == mysqlErrDuplicateEntry {
		return ErrDuplicateEntry
	}
	return err
}
