package postgres

import (
	"database/sql/driver"
	"fmt"
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassifyDBError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		wantUnavailable bool
	}{
		{name: "bad connection", err: driver.ErrBadConn, wantUnavailable: true},
		{name: "connection refused", err: fmt.Errorf("dial tcp 127.0.0.1:5432: connect: connection refused"), wantUnavailable: true},
		{name: "admin shutdown", err: &pgconn.PgError{Code: "57P01"}, wantUnavailable: true},
		{name: "connection exception", err: &pgconn.PgError{Code: "08006"}, wantUnavailable: true},
		{name: "syntax error", err: &pgconn.PgError{Code: "42601"}, wantUnavailable: false},
		{name: "generic", err: fmt.Errorf("something odd"), wantUnavailable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyDBError(tt.err, "failed")

			assert.Equal(t, tt.wantUnavailable, errors.Is(got, domainerrors.ErrStoreUnavailable))

			var appErr domainerrors.AppError
			assert.True(t, errors.As(got, &appErr))
		})
	}
}

func TestClassifyDBError_Nil(t *testing.T) {
	assert.NoError(t, classifyDBError(nil, "failed"))
}

func TestConstraintViolations(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: "23503"}))

	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: "23514"}))
}

func TestLikeEscaper(t *testing.T) {
	assert.Equal(t, `100\%`, likeEscaper.Replace("100%"))
	assert.Equal(t, `a\_b`, likeEscaper.Replace("a_b"))
	assert.Equal(t, `c:\\x`, likeEscaper.Replace(`c:\x`))
	assert.Equal(t, "ryzen", likeEscaper.Replace("ryzen"))
}
