package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// CreateJournal inserts a journal header and its records and returns the
// commit sequence number. Wrap it in ExecTx for atomicity.
func (s *Store) CreateJournal(j Journal, records []Record) (int64, error) {
	stmtJournal, err := s.db.Prepare(`
        INSERT INTO journals (id, description, created_at)
        VALUES (?, ?, ?)
        RETURNING seq;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare journal SQL: %w", err)
	}
	defer stmtJournal.Close()

	var seq int64
	err = stmtJournal.QueryRow(j.ID, j.Description, j.CreatedAt).Scan(&seq)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("journal %s: %w", j.ID, ErrJournalExists)
		}
		return 0, fmt.Errorf("failed to insert journal: %w", err)
	}

	stmtRecord, err := s.db.Prepare(`
        INSERT INTO records (journal_id, position, account_code, debit, credit, asset, memo)
        VALUES (?, ?, ?, ?, ?, ?, ?);
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare record SQL: %w", err)
	}
	defer stmtRecord.Close()

	for i, r := range records {
		_, err := stmtRecord.Exec(j.ID, i, r.AccountCode, r.Debit, r.Credit, r.Asset, r.Memo)
		if err != nil {
			if isConstraintViolation(err) {
				return 0, fmt.Errorf("failed to insert record (account: %s): %w", r.AccountCode, ErrConstraintViolation)
			}
			return 0, fmt.Errorf("failed to insert record (account: %s): %w", r.AccountCode, err)
		}
	}

	return seq, nil
}

func (s *Store) GetJournal(id string) (*Journal, []*Record, error) {
	var j Journal
	err := s.db.QueryRow(`
        SELECT seq, id, description, created_at
        FROM journals
        WHERE id = ?
    `, id).Scan(&j.Seq, &j.ID, &j.Description, &j.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, fmt.Errorf("journal %s not found: %w", id, ErrRecordNotFound)
		}
		return nil, nil, fmt.Errorf("failed to query journal: %w", err)
	}

	records, err := s.GetRecordsByJournal(id)
	if err != nil {
		return nil, nil, err
	}

	return &j, records, nil
}

// GetAllJournals returns the full history in commit order, for replay.
func (s *Store) GetAllJournals() ([]*Journal, error) {
	rows, err := s.db.Query(`
        SELECT seq, id, description, created_at
        FROM journals
        ORDER BY seq
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query journals: %w", err)
	}
	defer rows.Close()

	return scanJournals(rows)
}

// GetRecentJournals returns the newest journals first.
func (s *Store) GetRecentJournals(limit int) ([]*Journal, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.Query(`
        SELECT seq, id, description, created_at
        FROM journals
        ORDER BY seq DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query journals: %w", err)
	}
	defer rows.Close()

	return scanJournals(rows)
}

// GetJournalsByAccount returns journals touching the account, newest first.
func (s *Store) GetJournalsByAccount(code string, limit int) ([]*Journal, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.Query(`
        SELECT DISTINCT j.seq, j.id, j.description, j.created_at
        FROM journals j
        INNER JOIN records r ON j.id = r.journal_id
        WHERE r.account_code = ?
        ORDER BY j.seq DESC
        LIMIT ?
    `, code, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query journals: %w", err)
	}
	defer rows.Close()

	return scanJournals(rows)
}

func (s *Store) GetRecordsByJournal(id string) ([]*Record, error) {
	rows, err := s.db.Query(`
        SELECT journal_id, position, account_code, debit, credit, asset, memo
        FROM records
        WHERE journal_id = ?
        ORDER BY position
    `, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		r := &Record{}
		err := rows.Scan(
			&r.JournalID,
			&r.Position,
			&r.AccountCode,
			&r.Debit,
			&r.Credit,
			&r.Asset,
			&r.Memo,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating records: %w", err)
	}
	return records, nil
}

func scanJournals(rows *sql.Rows) ([]*Journal, error) {
	var journals []*Journal
	for rows.Next() {
		j := &Journal{}
		if err := rows.Scan(&j.Seq, &j.ID, &j.Description, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal: %w", err)
		}
		journals = append(journals, j)
	}
	return journals, rows.Err()
}
