package warehouse

import (
	"strings"
	"testing"
)

func TestTablesOrder(t *testing.T) {
	want := []string{
		"staging_events",
		"staging_songs",
		"songplays",
		"users",
		"songs",
		"artists",
		"time",
	}

	if len(Tables) != len(want) {
		t.Fatalf("Expected %d tables, got %d", len(want), len(Tables))
	}
	for i, name := range want {
		if Tables[i] != name {
			t.Errorf("Tables[%d]: expected %s, got %s", i, name, Tables[i])
		}
	}
}

func TestDropStatements(t *testing.T) {
	stmts := DropStatements()

	if len(stmts) != len(Tables) {
		t.Fatalf("Expected %d drop statements, got %d", len(Tables), len(stmts))
	}
	for i, stmt := range stmts {
		if !strings.HasPrefix(stmt.SQL, "DROP TABLE IF EXISTS ") {
			t.Errorf("Drop statement %s is not idempotent: %s", stmt.Name, stmt.SQL)
		}
		if !strings.HasSuffix(stmt.SQL, Tables[i]) {
			t.Errorf("Drop statement %d should target %s: %s", i, Tables[i], stmt.SQL)
		}
	}
}

func TestCreateStatementsOrder(t *testing.T) {
	stmts := CreateStatements()

	if len(stmts) != len(Tables) {
		t.Fatalf("Expected %d create statements, got %d", len(Tables), len(stmts))
	}
	// Staging first, then fact, then dimensions
	for i, stmt := range stmts {
		if !strings.Contains(stmt.SQL, "CREATE TABLE "+Tables[i]) {
			t.Errorf("Create statement %d should create %s, got %s", i, Tables[i], stmt.Name)
		}
	}
}

func TestStagingTablesHaveNoKeys(t *testing.T) {
	// Staging tables land raw source records; duplicates and nulls are
	// expected, so no primary keys and no NOT NULL constraints.
	for _, sql := range []string{createStagingEventsSQL, createStagingSongsSQL} {
		if strings.Contains(sql, "PRIMARY KEY") {
			t.Errorf("Staging table should not declare a primary key: %s", sql)
		}
		if strings.Contains(sql, "NOT NULL") {
			t.Errorf("Staging table should not declare NOT NULL columns: %s", sql)
		}
	}
}

func TestStagingEventsColumns(t *testing.T) {
	for _, col := range []string{
		"artist", "auth", "firstName", "gender", "itemInSession", "lastName",
		"length", "level", "location", "method", "page", "registration",
		"sessionId", "song", "status", "ts", "userAgent", "userId",
	} {
		if !strings.Contains(createStagingEventsSQL, col) {
			t.Errorf("staging_events missing column %s", col)
		}
	}
	// ts carries epoch milliseconds and must be wide enough for them
	tsIsBigint := false
	for _, line := range strings.Split(createStagingEventsSQL, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == "ts" && strings.HasPrefix(fields[1], "BIGINT") {
			tsIsBigint = true
		}
	}
	if !tsIsBigint {
		t.Error("staging_events ts should be BIGINT (epoch milliseconds)")
	}
}

func TestStagingSongsColumns(t *testing.T) {
	for _, col := range []string{
		"num_songs", "artist_id", "artist_latitude", "artist_longitude",
		"artist_location", "artist_name", "song_id", "title", "duration", "year",
	} {
		if !strings.Contains(createStagingSongsSQL, col) {
			t.Errorf("staging_songs missing column %s", col)
		}
	}
}

func TestSongplaysLayout(t *testing.T) {
	if !strings.Contains(createSongplaysSQL, "IDENTITY(0,1) PRIMARY KEY") {
		t.Error("songplays should have an auto-incrementing surrogate key")
	}
	for _, col := range []string{
		"start_time", "user_id", "level", "song_id", "artist_id",
		"session_id", "location", "user_agent",
	} {
		if !strings.Contains(createSongplaysSQL, col) {
			t.Errorf("songplays missing column %s", col)
		}
	}
	// Fact table is distributed and sorted on time
	if !strings.Contains(createSongplaysSQL, "DISTSTYLE KEY") {
		t.Error("songplays should be key-distributed")
	}
	if !strings.Contains(createSongplaysSQL, "DISTKEY ( start_time )") {
		t.Error("songplays should be distributed on start_time")
	}
	if !strings.Contains(createSongplaysSQL, "SORTKEY ( start_time )") {
		t.Error("songplays should be sorted on start_time")
	}
}

func TestDimensionsReplicated(t *testing.T) {
	// Small dimensions are replicated to every node for broadcast joins
	tests := []struct {
		name    string
		sql     string
		sortKey string
	}{
		{"users", createUsersSQL, "SORTKEY ( user_id )"},
		{"songs", createSongsSQL, "SORTKEY ( year )"},
		{"artists", createArtistsSQL, "SORTKEY ( artist_id )"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.sql, "DISTSTYLE ALL") {
				t.Errorf("%s should be replicated (DISTSTYLE ALL)", tt.name)
			}
			if !strings.Contains(tt.sql, tt.sortKey) {
				t.Errorf("%s missing %s", tt.name, tt.sortKey)
			}
		})
	}
}

func TestTimeLayout(t *testing.T) {
	if !strings.Contains(createTimeSQL, "start_time TIMESTAMP NOT NULL PRIMARY KEY") {
		t.Error("time should be keyed on start_time")
	}
	for _, col := range []string{"hour", "day", "week", "month", "year", "weekday"} {
		if !strings.Contains(createTimeSQL, col) {
			t.Errorf("time missing column %s", col)
		}
	}
	if !strings.Contains(createTimeSQL, "DISTKEY ( start_time )") {
		t.Error("time should be distributed on start_time")
	}
}

func TestDictionaryEncoding(t *testing.T) {
	// Low-cardinality strings use byte-dictionary compression
	tests := []struct {
		sql    string
		column string
	}{
		{createUsersSQL, "gender"},
		{createUsersSQL, "level"},
		{createTimeSQL, "weekday"},
	}

	for _, tt := range tests {
		found := false
		for _, line := range strings.Split(tt.sql, "\n") {
			if strings.Contains(line, tt.column) && strings.Contains(line, "ENCODE BYTEDICT") {
				found = true
			}
		}
		if !found {
			t.Errorf("Column %s should use BYTEDICT encoding", tt.column)
		}
	}
}
