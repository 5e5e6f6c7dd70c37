package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"backup-admin/internal/domain/asset"
	apperrors "backup-admin/pkg/errors"
)

const (
	assetColumns = "id, name, type, user_name, user_email, status, configured_on"

	entityAsset      = "assets"
	errAssetNotFound = "asset not found"
)

func scanAsset(row pgx.Row) (*asset.Asset, error) {
	a := &asset.Asset{}
	err := row.Scan(&a.ID, &a.Name, &a.Type, &a.UserName, &a.UserEmail, &a.Status, &a.ConfiguredOn)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Store) ListAssets(ctx context.Context) ([]asset.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets ORDER BY configured_on`

	rows, err := s.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, errQueryFailed(entityAsset, err)
	}
	defer rows.Close()

	assets := make([]asset.Asset, 0)
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, errQueryFailed(entityAsset, err)
		}
		assets = append(assets, *a)
	}
	return assets, rows.Err()
}

func (s *Store) ListAssetsByType(ctx context.Context, assetType string) ([]asset.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE type = $1 ORDER BY configured_on`

	rows, err := s.db.Pool.Query(ctx, query, assetType)
	if err != nil {
		return nil, errQueryFailed(entityAsset, err)
	}
	defer rows.Close()

	assets := make([]asset.Asset, 0)
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, errQueryFailed(entityAsset, err)
		}
		assets = append(assets, *a)
	}
	return assets, rows.Err()
}

func (s *Store) GetAsset(ctx context.Context, id string) (*asset.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1`

	a, err := scanAsset(s.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errAssetNotFound)
		}
		return nil, errQueryFailed(entityAsset, err)
	}
	return a, nil
}

func (s *Store) CreateAsset(ctx context.Context, in asset.CreateAssetInput) (*asset.Asset, error) {
	query := `
		INSERT INTO assets (name, type, user_name, user_email, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + assetColumns

	a, err := scanAsset(s.db.Pool.QueryRow(ctx, query, in.Name, in.Type, in.UserName, in.UserEmail, in.Status))
	if err != nil {
		return nil, errInsertFailed(entityAsset, err)
	}
	return a, nil
}
