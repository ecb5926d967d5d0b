package dbmetrics

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDriver драйвер без сервера: Exec и Query всегда успешны и пусты
type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) { return stubConn{}, nil }

type stubConn struct{}

func (stubConn) Prepare(string) (driver.Stmt, error) { return stubStmt{}, nil }
func (stubConn) Close() error                        { return nil }
func (stubConn) Begin() (driver.Tx, error)           { return nil, driver.ErrSkip }

type stubStmt struct{}

func (stubStmt) Close() error                               { return nil }
func (stubStmt) NumInput() int                              { return -1 }
func (stubStmt) Exec([]driver.Value) (driver.Result, error) { return driver.RowsAffected(1), nil }
func (stubStmt) Query([]driver.Value) (driver.Rows, error)  { return stubRows{}, nil }

type stubRows struct{}

func (stubRows) Columns() []string         { return []string{"id"} }
func (stubRows) Close() error              { return nil }
func (stubRows) Next([]driver.Value) error { return io.EOF }

func init() {
	sql.Register("dbmetrics-stub", stubDriver{})
}

type recordingObserver struct {
	mu         sync.Mutex
	operations []string
	poolStats  int
}

func (o *recordingObserver) ObserveQuery(operation string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.operations = append(o.operations, operation)
}

func (o *recordingObserver) SetPoolStats(sql.DBStats) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.poolStats++
}

func (o *recordingObserver) snapshot() ([]string, int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.operations...), o.poolStats
}

func openStub(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("dbmetrics-stub", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestWrap_ObservesQueries(t *testing.T) {
	obs := &recordingObserver{}
	stopCh := make(chan struct{})
	defer close(stopCh)

	db := Wrap(openStub(t), obs, time.Hour, stopCh)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, "INSERT INTO bookings DEFAULT VALUES")
	require.NoError(t, err)

	rows, err := db.QueryContext(ctx, "SELECT id FROM bookings")
	require.NoError(t, err)
	require.NoError(t, rows.Close())

	var id string
	assert.ErrorIs(t, db.QueryRowContext(ctx, "SELECT id FROM bookings LIMIT 1").Scan(&id), sql.ErrNoRows)

	ops, _ := obs.snapshot()
	assert.Equal(t, []string{"exec", "query", "query_row"}, ops)
}

func TestWrap_StopsCollectingPoolStats(t *testing.T) {
	obs := &recordingObserver{}
	stopCh := make(chan struct{})

	Wrap(openStub(t), obs, 5*time.Millisecond, stopCh)

	require.Eventually(t, func() bool {
		_, n := obs.snapshot()
		return n >= 3
	}, time.Second, time.Millisecond)

	close(stopCh)

	// последний тик мог успеть сработать до закрытия канала
	time.Sleep(20 * time.Millisecond)
	_, stopped := obs.snapshot()

	time.Sleep(50 * time.Millisecond)
	_, later := obs.snapshot()
	assert.Equal(t, stopped, later)
}
