package txmanager

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDriver считает коммиты и откаты на уровне драйвера:
// sql.Tx.Rollback после Commit не доходит до драйвера,
// поэтому счетчики отражают фактическую судьбу транзакций
type stubDriver struct {
	mu        sync.Mutex
	commits   int
	rollbacks int
}

func (d *stubDriver) Open(string) (driver.Conn, error) {
	return &stubConn{d: d}, nil
}

type stubConn struct {
	d *stubDriver
}

func (c *stubConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("stub: prepare is not supported")
}

func (c *stubConn) Close() error {
	return nil
}

func (c *stubConn) Begin() (driver.Tx, error) {
	return &stubTx{d: c.d}, nil
}

func (c *stubConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	return &stubTx{d: c.d}, nil
}

type stubTx struct {
	d *stubDriver
}

func (t *stubTx) Commit() error {
	t.d.mu.Lock()
	defer t.d.mu.Unlock()
	t.d.commits++
	return nil
}

func (t *stubTx) Rollback() error {
	t.d.mu.Lock()
	defer t.d.mu.Unlock()
	t.d.rollbacks++
	return nil
}

var stubSeq int64

func newStubDB(t *testing.T) (*sql.DB, *stubDriver) {
	t.Helper()

	d := &stubDriver{}
	name := fmt.Sprintf("txmanager-stub-%d", atomic.AddInt64(&stubSeq, 1))
	sql.Register(name, d)

	db, err := sql.Open(name, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db, d
}

func TestTransactionManager_Do(t *testing.T) {
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		db, d := newStubDB(t)
		tm := NewTransactionManager(db)

		err := tm.Do(ctx, func(txCtx context.Context) error {
			assert.True(t, InTransaction(txCtx))
			return nil
		})
		require.NoError(t, err)

		assert.Equal(t, 1, d.commits)
		assert.Equal(t, 0, d.rollbacks)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db, d := newStubDB(t)
		tm := NewTransactionManager(db)

		wantErr := errors.New("business rule violated")
		err := tm.Do(ctx, func(context.Context) error {
			return wantErr
		})
		require.ErrorIs(t, err, wantErr)

		assert.Equal(t, 0, d.commits)
		assert.Equal(t, 1, d.rollbacks)
	})

	t.Run("rolls back on panic", func(t *testing.T) {
		db, d := newStubDB(t)
		tm := NewTransactionManager(db)

		assert.Panics(t, func() {
			_ = tm.Do(ctx, func(context.Context) error {
				panic("boom")
			})
		})

		assert.Equal(t, 0, d.commits)
		assert.Equal(t, 1, d.rollbacks)
	})

	t.Run("rejects nested transaction", func(t *testing.T) {
		db, d := newStubDB(t)
		tm := NewTransactionManager(db)

		err := tm.Do(ctx, func(txCtx context.Context) error {
			return tm.Do(txCtx, func(context.Context) error {
				return nil
			})
		})
		require.ErrorIs(t, err, ErrNestedTransaction)

		// Внешняя транзакция откатывается вместе с ошибкой вложенной
		assert.Equal(t, 0, d.commits)
		assert.Equal(t, 1, d.rollbacks)
	})
}

func TestGetExecutor(t *testing.T) {
	db, _ := newStubDB(t)

	t.Run("falls back outside transaction", func(t *testing.T) {
		assert.Equal(t, db, GetExecutor(context.Background(), db))
		assert.False(t, InTransaction(context.Background()))
	})

	t.Run("returns transaction from context", func(t *testing.T) {
		tm := NewTransactionManager(db)

		err := tm.Do(context.Background(), func(txCtx context.Context) error {
			executor := GetExecutor(txCtx, db)
			assert.NotEqual(t, db, executor)
			assert.IsType(t, &sql.Tx{}, executor)
			return nil
		})
		require.NoError(t, err)
	})
}
