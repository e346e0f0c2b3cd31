package sqliteutil

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

type Config struct {
	File      string `json:"file"`
	Url       string `json:"url"`
	AuthToken string `json:"auth_token"`
}

func wrapOpenDB(err error) error {
	return fmt.Errorf("open db: %w", err)
}

// OpenDB opens either a local sqlite file or a remote libsql database,
// depending on whether Url is set, and applies the schema.
func OpenDB(schema string, config Config) (*sql.DB, error) {
	if config.Url != "" {
		dsn := config.Url
		if config.AuthToken != "" {
			dsn = fmt.Sprintf("%s?authToken=%s", config.Url, config.AuthToken)
		}
		db, err := sql.Open("libsql", dsn)
		if err != nil {
			return nil, wrapOpenDB(err)
		}
		_, err = db.Exec(schema)
		if err != nil {
			return nil, wrapOpenDB(err)
		}
		return db, nil
	}

	if config.File != ":memory:" && filepath.Dir(config.File) != "." {
		os.MkdirAll(filepath.Dir(config.File), 0777)
	}
	db, err := sql.Open("sqlite", config.File)
	if err != nil {
		return nil, wrapOpenDB(err)
	}

	// see this stackoverflow post for information on why the following
	// lines exist: https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance
	db.SetMaxOpenConns(1)
	_, err = db.Exec("PRAGMA journal_mode=WAL")
	if err != nil {
		return nil, wrapOpenDB(err)
	}
	_, err = db.Exec(schema)
	if err != nil {
		return nil, wrapOpenDB(err)
	}

	return db, nil
}
