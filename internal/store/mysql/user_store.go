package mysql

import (
	"context"
	"database/sql"

	"github.com/ayivi/bus-ticket-reservation/internal/model"
	"github.com/ayivi/bus-ticket-reservation/internal/store"
)

// UserStore persists the users collection in the `users` table.
type UserStore struct{ db *sql.DB }

const userColumns = `id, email, password_hash, role, name, phone, npi, avatar_url,
	company_name, banner_url, ifu, rccm, anatt_url, other_docs_url, status`

// List returns every user in insertion order.
func (s *UserStore) List(ctx context.Context) ([]model.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	users := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.Name, &u.Phone, &u.NPI,
			&u.AvatarURL, &u.CompanyName, &u.BannerURL, &u.IFU, &u.RCCM,
			&u.AnattURL, &u.OtherDocsURL, &u.Status,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Upsert inserts the user or replaces the record sharing its id.
// The `seq` column is not listed in the UPDATE clause, so a replaced
// record keeps its position. Required identity fields are checked
// here; everything else, duplicate emails included, passes through.
func (s *UserStore) Upsert(ctx context.Context, u *model.User) error {
	switch {
	case u.ID == "":
		return store.Missing("id")
	case u.Email == "":
		return store.Missing("email")
	case u.Role == "":
		return store.Missing("role")
	}
	const q = `INSERT INTO users (` + userColumns + `)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
		ON DUPLICATE KEY UPDATE
			email=VALUES(email), password_hash=VALUES(password_hash),
			role=VALUES(role), name=VALUES(name), phone=VALUES(phone),
			npi=VALUES(npi), avatar_url=VALUES(avatar_url),
			company_name=VALUES(company_name), banner_url=VALUES(banner_url),
			ifu=VALUES(ifu), rccm=VALUES(rccm), anatt_url=VALUES(anatt_url),
			other_docs_url=VALUES(other_docs_url), status=VALUES(status)`
	_, err := s.db.ExecContext(ctx, q,
		u.ID, u.Email, u.PasswordHash, u.Role, u.Name, u.Phone, u.NPI,
		u.AvatarURL, u.CompanyName, u.BannerURL, u.IFU, u.RCCM,
		u.AnattURL, u.OtherDocsURL, u.Status)
	return err
}
