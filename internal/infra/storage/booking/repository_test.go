package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AGIA-RentalService/pkg/dbmetrics"
)

var errQueryRecorded = errors.New("query recorded")

// recordingExecutor записывает построенный SQL и аргументы вместо выполнения
type recordingExecutor struct {
	query string
	args  []interface{}
}

func (e *recordingExecutor) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	e.query = query
	e.args = args
	return nil, errQueryRecorded
}

func (e *recordingExecutor) QueryContext(_ context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	e.query = query
	e.args = args
	return nil, errQueryRecorded
}

func (e *recordingExecutor) QueryRowContext(_ context.Context, _ string, _ ...interface{}) *sql.Row {
	return nil
}

func (e *recordingExecutor) Commit() error   { return nil }
func (e *recordingExecutor) Rollback() error { return nil }

func TestRepository_GetByUserID_OrdersByRecency(t *testing.T) {
	exec := &recordingExecutor{}
	repo := NewRepository(exec)

	_, err := repo.GetByUserID(context.Background(), "user-1")

	require.ErrorIs(t, err, ErrExecQuery)
	// История пользователя: сначала новые, при равном created_at -
	// порядок вставки
	assert.Contains(t, exec.query, "ORDER BY created_at DESC, seq ASC")
	assert.Equal(t, []interface{}{"user-1"}, exec.args)
}

func TestRepository_GetConfirmedByVillaID_LocksRowsInTransaction(t *testing.T) {
	exec := &recordingExecutor{}
	repo := NewRepository(exec)

	ctx := dbmetrics.WithTx(context.Background(), exec)
	_, err := repo.GetConfirmedByVillaID(ctx, "villa-1")

	require.ErrorIs(t, err, ErrExecQuery)
	assert.Contains(t, exec.query, "FOR UPDATE")
	assert.Contains(t, exec.query, "status IN")
}

func TestRepository_GetConfirmedByVillaID_NoLockOutsideTransaction(t *testing.T) {
	exec := &recordingExecutor{}
	repo := NewRepository(exec)

	_, err := repo.GetConfirmedByVillaID(context.Background(), "villa-1")

	require.ErrorIs(t, err, ErrExecQuery)
	assert.NotContains(t, exec.query, "FOR UPDATE")
}

func TestIsSerializationFailure(t *testing.T) {
	assert.True(t, IsSerializationFailure(fmt.Errorf("%w: Create - execute insert: pq error", ErrSerializationFailure)))
	// 40001 на COMMIT приходит из transaction manager необёрнутым в sentinel
	assert.True(t, IsSerializationFailure(fmt.Errorf("txmanager: commit transaction: %w", &pq.Error{Code: "40001"})))
	assert.False(t, IsSerializationFailure(&pq.Error{Code: "23505"}))
	assert.False(t, IsSerializationFailure(errQueryRecorded))
	assert.False(t, IsSerializationFailure(nil))
}
