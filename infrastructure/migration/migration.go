// Package migration aplica o schema embutido no binário, uma vez por arquivo.
package migration

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brand-projection-api/infrastructure/database"
)

const migrationTable = "schema_migrations"

//go:embed sql/*.sql
var files embed.FS

// Apply executa os arquivos ainda não registrados em schema_migrations, em
// ordem alfabética, cada um na sua própria transação.
func Apply(ctx context.Context, conn *database.Connection) error {
	createSQL := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    name TEXT PRIMARY KEY,
    applied_at TIMESTAMP NOT NULL
)`, migrationTable)
	if _, err := conn.Exec(ctx, createSQL); err != nil {
		return fmt.Errorf("erro ao criar tabela de migrações: %w", err)
	}

	names, err := migrationFiles()
	if err != nil {
		return err
	}

	for _, name := range names {
		applied, err := isApplied(ctx, conn, name)
		if err != nil {
			return fmt.Errorf("erro ao verificar migração %s: %w", name, err)
		}
		if applied {
			continue
		}

		content, err := fs.ReadFile(files, "sql/"+name)
		if err != nil {
			return fmt.Errorf("erro ao ler migração %s: %w", name, err)
		}

		err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			for _, statement := range splitStatements(string(content)) {
				if _, err := tx.ExecContext(ctx, statement); err != nil {
					return err
				}
			}

			query, args, err := conn.StatementBuilder().
				Insert(migrationTable).
				Columns("name", "applied_at").
				Values(name, time.Now().UTC()).
				ToSql()
			if err != nil {
				return err
			}

			_, err = tx.ExecContext(ctx, query, args...)
			return err
		})
		if err != nil {
			return fmt.Errorf("erro ao aplicar migração %s: %w", name, err)
		}

		logrus.WithField("migration", name).Info("Migração aplicada")
	}

	return nil
}

func migrationFiles() ([]string, error) {
	entries, err := fs.ReadDir(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("erro ao listar migrações: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}

func isApplied(ctx context.Context, conn *database.Connection, name string) (bool, error) {
	query, args, err := conn.StatementBuilder().
		Select("1").
		From(migrationTable).
		Where("name = ?", name).
		ToSql()
	if err != nil {
		return false, err
	}

	var found int
	err = conn.QueryRow(ctx, query, args...).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// splitStatements separa o arquivo em comandos. Os arquivos não usam ";"
// dentro de literais.
func splitStatements(content string) []string {
	parts := strings.Split(content, ";")
	statements := make([]string, 0, len(parts))
	for _, part := range parts {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}
