// Package vocabstore persists vocabularies and their word frequencies
// in a SQLite database. Each saved set gets a UUID and records the
// BLAKE3 hash of the corpus it was counted from, so sets can be traced
// back to their source text.
package vocabstore

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/nlptk/nlptk/core/errors"
	"github.com/nlptk/nlptk/core/sqlite"
)

// Store wraps a SQLite database holding vocabulary sets.
type Store struct {
	db *sql.DB
}

// Words are stored as BLOBs: corpus content is arbitrary bytes and must
// round-trip exactly, including invalid UTF-8.
const schema = `
CREATE TABLE IF NOT EXISTS vocabularies (
	id          TEXT PRIMARY KEY,
	corpus_hash TEXT NOT NULL,
	created_at  TEXT NOT NULL,
	word_count  INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS words (
	vocab_id TEXT NOT NULL REFERENCES vocabularies(id),
	word     BLOB NOT NULL,
	count    INTEGER NOT NULL,
	PRIMARY KEY (vocab_id, word)
);
`

// Open opens the store at path, creating the database and schema as
// needed.
func Open(path string) (*Store, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "apply vocabulary schema")
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Info describes one stored vocabulary set.
type Info struct {
	ID         string
	CorpusHash string
	CreatedAt  time.Time
	WordCount  int
}

// Save stores counts as a new vocabulary set and returns its generated
// ID. The whole set is written in one transaction: a failure leaves no
// partial vocabulary behind.
func (s *Store) Save(corpusHash string, counts map[string]int) (string, error) {
	id := uuid.New().String()

	tx, err := s.db.Begin()
	if err != nil {
		return "", errors.Wrap(err, "begin vocabulary save")
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO vocabularies (id, corpus_hash, created_at, word_count) VALUES (?, ?, ?, ?)`,
		id, corpusHash, time.Now().UTC().Format(time.RFC3339), len(counts),
	)
	if err != nil {
		return "", errors.Wrap(err, "insert vocabulary row")
	}

	stmt, err := tx.Prepare(`INSERT INTO words (vocab_id, word, count) VALUES (?, ?, ?)`)
	if err != nil {
		return "", errors.Wrap(err, "prepare word insert")
	}
	defer stmt.Close()

	for word, count := range counts {
		if _, err := stmt.Exec(id, []byte(word), count); err != nil {
			return "", errors.Wrapf(err, "insert word %q", word)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", errors.Wrap(err, "commit vocabulary save")
	}
	return id, nil
}

// Load returns the word counts of the set with the given ID.
func (s *Store) Load(id string) (map[string]int, error) {
	var exists int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM vocabularies WHERE id = ?`, id).Scan(&exists)
	if err != nil {
		return nil, errors.Wrap(err, "look up vocabulary")
	}
	if exists == 0 {
		return nil, errors.NewNotFound("vocabulary", id)
	}

	rows, err := s.db.Query(`SELECT word, count FROM words WHERE vocab_id = ?`, id)
	if err != nil {
		return nil, errors.Wrap(err, "query vocabulary words")
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var word []byte
		var count int
		if err := rows.Scan(&word, &count); err != nil {
			return nil, errors.Wrap(err, "scan vocabulary word")
		}
		counts[string(word)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate vocabulary words")
	}
	return counts, nil
}

// Latest returns the most recently created set, or a NotFoundError if
// the store is empty.
func (s *Store) Latest() (*Info, error) {
	row := s.db.QueryRow(
		`SELECT id, corpus_hash, created_at, word_count FROM vocabularies ORDER BY created_at DESC, id DESC LIMIT 1`,
	)
	info, err := scanInfo(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound("vocabulary", "")
	}
	if err != nil {
		return nil, errors.Wrap(err, "query latest vocabulary")
	}
	return info, nil
}

// List returns every stored set, newest first.
func (s *Store) List() ([]Info, error) {
	rows, err := s.db.Query(
		`SELECT id, corpus_hash, created_at, word_count FROM vocabularies ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, errors.Wrap(err, "query vocabularies")
	}
	defer rows.Close()

	var infos []Info
	for rows.Next() {
		info, err := scanInfo(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan vocabulary row")
		}
		infos = append(infos, *info)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate vocabularies")
	}
	return infos, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInfo(row rowScanner) (*Info, error) {
	var info Info
	var created string
	if err := row.Scan(&info.ID, &info.CorpusHash, &created, &info.WordCount); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, created)
	if err != nil {
		return nil, err
	}
	info.CreatedAt = t
	return &info, nil
}
