package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"credit-system/internal/pkg/apperrors"
)

const createCustomersTable = `
        CREATE TABLE IF NOT EXISTS customers (
            id         BIGSERIAL PRIMARY KEY,
            first_name VARCHAR(255) NOT NULL,
            last_name  VARCHAR(255) NOT NULL,
            cpf        VARCHAR(32) NOT NULL UNIQUE,
            email      VARCHAR(255) NOT NULL UNIQUE,
            password   VARCHAR(255) NOT NULL,
            income     NUMERIC(15, 2) NOT NULL,
            zip_code   VARCHAR(16) NOT NULL,
            street     VARCHAR(255) NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`

// EnsureSchema creates the customers table when it does not exist yet.
func EnsureSchema(ctx context.Context, db DBPool, logger *slog.Logger) error {
	logger.InfoContext(ctx, "Ensuring customers table exists")
	if _, err := db.Exec(ctx, createCustomersTable); err != nil {
		logger.ErrorContext(ctx, "Failed to create customers table", slog.Any("error", err))
		return fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return nil
}
