package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/brand-projection-api/infrastructure/database"
)

const settingsTable = "settings"

// Chaves conhecidas da tabela settings
const (
	SettingCommissionRate = "commission_rate"
	SettingBrandsSeeded   = "brands_seeded"
)

//go:generate mockgen -source=settings.go -destination=mocks/settings_mock.go -package=mocks
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
}

type settingsRepository struct {
	conn *database.Connection
}

func NewSettingsRepository(conn *database.Connection) SettingsRepository {
	return &settingsRepository{
		conn: conn,
	}
}

// GetSetting retorna o valor e se a chave existe.
func (r *settingsRepository) GetSetting(ctx context.Context, key string) (string, bool, error) {
	query, args, err := r.conn.StatementBuilder().
		Select("value").
		From(settingsTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", false, errors.Wrap(err, "erro ao construir consulta de configuração")
	}

	var value string
	err = r.conn.QueryRow(ctx, query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "erro ao buscar configuração %s", key)
	}

	return value, true, nil
}

func (r *settingsRepository) SetSetting(ctx context.Context, key, value string) error {
	query, args, err := r.conn.StatementBuilder().
		Insert(settingsTable).
		Columns("key", "value", "updated_at").
		Values(key, value, now()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir gravação de configuração")
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "erro ao gravar configuração %s", key)
	}

	return nil
}
