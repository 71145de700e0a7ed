package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/corvidae/voxctl/internal/grammar"
	"github.com/corvidae/voxctl/server/dao"
	"github.com/google/uuid"
)

func NewRecognitionsDBConn(file string) (*RecognitionsDB, error) {
	repo := &RecognitionsDB{}

	var err error
	repo.db, err = sql.Open("sqlite", file)
	if err != nil {
		return nil, wrapDBError(err)
	}

	return repo, repo.init(false)
}

type RecognitionsDB struct {
	db         *sql.DB
	multiTable bool
}

func (repo *RecognitionsDB) init(fk bool) error {
	repo.multiTable = fk

	stmt := `CREATE TABLE IF NOT EXISTS recognitions (
		id TEXT NOT NULL PRIMARY KEY,
		session_id TEXT NOT NULL`

	if fk {
		stmt += ` REFERENCES sessions(id) ON DELETE CASCADE ON UPDATE CASCADE`
	}

	stmt += `,
		user_id TEXT NOT NULL,
		input TEXT NOT NULL,
		verdict INTEGER NOT NULL,
		command TEXT NOT NULL,
		created INTEGER NOT NULL
	);`
	_, err := repo.db.Exec(stmt)
	if err != nil {
		return wrapDBError(err)
	}
	return nil
}

func (repo *RecognitionsDB) Create(ctx context.Context, r dao.Recognition) (dao.Recognition, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return dao.Recognition{}, fmt.Errorf("could not generate ID: %w", err)
	}

	stmt, err := repo.db.Prepare(`INSERT INTO recognitions (id, session_id, user_id, input, verdict, command, created) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return dao.Recognition{}, wrapDBError(err)
	}
	now := time.Now()

	_, err = stmt.ExecContext(
		ctx,
		convertToDB_UUID(newUUID),
		convertToDB_UUID(r.SessionID),
		convertToDB_UUID(r.UserID),
		r.Input,
		int(r.Verdict),
		r.Command,
		convertToDB_Time(now),
	)
	if err != nil {
		return dao.Recognition{}, wrapDBError(err)
	}

	return repo.GetByID(ctx, newUUID)
}

const selectRecognitionCols = `id, session_id, user_id, input, verdict, command, created`

func scanRecognition(row rowScanner) (dao.Recognition, error) {
	var r dao.Recognition
	var id, seshID, userID string
	var verdict int
	var created int64

	err := row.Scan(&id, &seshID, &userID, &r.Input, &verdict, &r.Command, &created)
	if err != nil {
		return r, wrapDBError(err)
	}

	if err := convertFromDB_UUID(id, &r.ID); err != nil {
		return r, fmt.Errorf("stored ID %q is invalid: %w", id, err)
	}
	if err := convertFromDB_UUID(seshID, &r.SessionID); err != nil {
		return r, fmt.Errorf("stored session ID %q is invalid: %w", seshID, err)
	}
	if err := convertFromDB_UUID(userID, &r.UserID); err != nil {
		return r, fmt.Errorf("stored user ID %q is invalid: %w", userID, err)
	}
	if err := convertFromDB_Time(created, &r.Created); err != nil {
		return r, fmt.Errorf("stored created time %d is invalid: %w", created, err)
	}
	r.Verdict = grammar.Result(verdict)

	return r, nil
}

func windowClause(notBefore, notAfter *time.Time, args []interface{}) (string, []interface{}) {
	var clauses []string
	if notBefore != nil {
		clauses = append(clauses, "created >= ?")
		args = append(args, notBefore.Unix())
	}
	if notAfter != nil {
		clauses = append(clauses, "created <= ?")
		args = append(args, notAfter.Unix())
	}
	if len(clauses) == 0 {
		return "", args
	}
	return " AND " + strings.Join(clauses, " AND "), args
}

func (repo *RecognitionsDB) GetAll(ctx context.Context, notBefore, notAfter *time.Time) ([]dao.Recognition, error) {
	where, args := windowClause(notBefore, notAfter, nil)
	q := fmt.Sprintf(`SELECT %s FROM recognitions WHERE 1=1%s;`, selectRecognitionCols, where)

	rows, err := repo.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	var all []dao.Recognition
	for rows.Next() {
		r, err := scanRecognition(rows)
		if err != nil {
			return all, err
		}
		all = append(all, r)
	}
	if err := rows.Err(); err != nil {
		return all, wrapDBError(err)
	}

	return all, nil
}

func (repo *RecognitionsDB) GetAllByUser(ctx context.Context, userID uuid.UUID, notBefore, notAfter *time.Time) ([]dao.Recognition, error) {
	args := []interface{}{convertToDB_UUID(userID)}
	where, args := windowClause(notBefore, notAfter, args)
	q := fmt.Sprintf(`SELECT %s FROM recognitions WHERE user_id = ?%s;`, selectRecognitionCols, where)

	rows, err := repo.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	var all []dao.Recognition
	for rows.Next() {
		r, err := scanRecognition(rows)
		if err != nil {
			return all, err
		}
		all = append(all, r)
	}
	if err := rows.Err(); err != nil {
		return all, wrapDBError(err)
	}

	return all, nil
}

func (repo *RecognitionsDB) GetAllBySession(ctx context.Context, sessionID uuid.UUID, notBefore, notAfter *time.Time) ([]dao.Recognition, error) {
	args := []interface{}{convertToDB_UUID(sessionID)}
	where, args := windowClause(notBefore, notAfter, args)
	q := fmt.Sprintf(`SELECT %s FROM recognitions WHERE session_id = ?%s;`, selectRecognitionCols, where)

	rows, err := repo.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	var all []dao.Recognition
	for rows.Next() {
		r, err := scanRecognition(rows)
		if err != nil {
			return all, err
		}
		all = append(all, r)
	}
	if err := rows.Err(); err != nil {
		return all, wrapDBError(err)
	}

	return all, nil
}

func (repo *RecognitionsDB) GetByID(ctx context.Context, id uuid.UUID) (dao.Recognition, error) {
	row := repo.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT %s FROM recognitions WHERE id = ?;`, selectRecognitionCols),
		convertToDB_UUID(id),
	)
	return scanRecognition(row)
}

func (repo *RecognitionsDB) Delete(ctx context.Context, id uuid.UUID) (dao.Recognition, error) {
	curVal, err := repo.GetByID(ctx, id)
	if err != nil {
		return curVal, err
	}

	res, err := repo.db.ExecContext(ctx, `DELETE FROM recognitions WHERE id = ?`,
		convertToDB_UUID(id),
	)
	if err != nil {
		return curVal, wrapDBError(err)
	}
	rowsAff, err := res.RowsAffected()
	if err != nil {
		return curVal, wrapDBError(err)
	}
	if rowsAff < 1 {
		return curVal, dao.ErrNotFound
	}

	return curVal, nil
}

func (repo *RecognitionsDB) Close() error {
	return repo.db.Close()
}
