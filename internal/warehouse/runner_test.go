package warehouse

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

// fakeDB records executed SQL and can fail on a chosen statement.
type fakeDB struct {
	executed []string
	failOn   string
	err      error
}

func (f *fakeDB) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	f.executed = append(f.executed, sql)
	if f.failOn != "" && strings.Contains(sql, f.failOn) {
		return pgconn.CommandTag{}, f.err
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func TestRunExecutesInOrder(t *testing.T) {
	db := &fakeDB{}
	stmts := []Statement{
		{Name: "first", SQL: "SELECT 1"},
		{Name: "second", SQL: "SELECT 2"},
		{Name: "third", SQL: "SELECT 3"},
	}

	if err := Run(context.Background(), db, stmts); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(db.executed) != 3 {
		t.Fatalf("Expected 3 statements executed, got %d", len(db.executed))
	}
	for i, want := range []string{"SELECT 1", "SELECT 2", "SELECT 3"} {
		if db.executed[i] != want {
			t.Errorf("Statement %d: expected %q, got %q", i, want, db.executed[i])
		}
	}
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	sentinel := errors.New("relation does not exist")
	db := &fakeDB{failOn: "SELECT 2", err: sentinel}
	stmts := []Statement{
		{Name: "first", SQL: "SELECT 1"},
		{Name: "second", SQL: "SELECT 2"},
		{Name: "third", SQL: "SELECT 3"},
	}

	err := Run(context.Background(), db, stmts)
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !errors.Is(err, sentinel) {
		t.Errorf("Error should wrap the driver error, got: %v", err)
	}
	if !strings.Contains(err.Error(), "second") {
		t.Errorf("Error should name the failing statement, got: %v", err)
	}
	// Earlier statements stay committed; later ones never run
	if len(db.executed) != 2 {
		t.Errorf("Expected execution to stop after failure, executed %d statements", len(db.executed))
	}
}

func TestRunEmpty(t *testing.T) {
	db := &fakeDB{}
	if err := Run(context.Background(), db, nil); err != nil {
		t.Fatalf("Run with no statements should succeed: %v", err)
	}
	if len(db.executed) != 0 {
		t.Errorf("No statements should have executed, got %d", len(db.executed))
	}
}

func TestFullSequenceStatementCount(t *testing.T) {
	// A full refresh is drop-all, create-all, two copies, five inserts.
	total := len(DropStatements()) + len(CreateStatements()) +
		len(CopyStatements(testCopyConfig())) + len(InsertStatements())
	if total != 21 {
		t.Errorf("Expected 21 statements in a full refresh, got %d", total)
	}
}
