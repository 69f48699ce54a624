package warehouse

// The schema is two staging tables plus a star schema: the songplays fact
// table and four dimensions. Staging tables carry the raw source shape with
// no keys; duplicates and nulls land as-is and are resolved downstream.
//
// Physical layout: songplays and time are distributed and sorted on
// start_time (they are joined and filtered by time); the small dimensions
// are replicated to every node and sorted on their natural key.
// Low-cardinality strings use byte-dictionary encoding.

const createStagingEventsSQL = `
CREATE TABLE staging_events (
    artist        VARCHAR(256),
    auth          VARCHAR(16),
    firstName     VARCHAR(256),
    gender        VARCHAR(256),
    itemInSession INTEGER,
    lastName      VARCHAR(256),
    length        NUMERIC(10,4),
    level         VARCHAR(8),
    location      VARCHAR(256),
    method        VARCHAR(6),
    page          VARCHAR(16),
    registration  BIGINT,
    sessionId     INTEGER,
    song          VARCHAR(256),
    status        INTEGER,
    ts            BIGINT,
    userAgent     VARCHAR(256),
    userId        INTEGER
)`

const createStagingSongsSQL = `
CREATE TABLE staging_songs (
    num_songs        INTEGER,
    artist_id        VARCHAR(20),
    artist_latitude  NUMERIC(9,6),
    artist_longitude NUMERIC(9,6),
    artist_location  VARCHAR(256),
    artist_name      VARCHAR(256),
    song_id          VARCHAR(20),
    title            VARCHAR(256),
    duration         NUMERIC(10,6),
    year             INTEGER
)`

const createSongplaysSQL = `
CREATE TABLE songplays (
    songplay_id INTEGER IDENTITY(0,1) PRIMARY KEY,
    start_time  TIMESTAMP NOT NULL,
    user_id     INTEGER NOT NULL,
    level       VARCHAR(8),
    song_id     VARCHAR(20) NOT NULL,
    artist_id   VARCHAR(20) NOT NULL,
    session_id  INTEGER NOT NULL,
    location    VARCHAR(256) NOT NULL,
    user_agent  VARCHAR(256) NOT NULL
)
DISTSTYLE KEY
DISTKEY ( start_time )
SORTKEY ( start_time )`

const createUsersSQL = `
CREATE TABLE users (
    user_id    INTEGER PRIMARY KEY,
    first_name VARCHAR(256) NOT NULL,
    last_name  VARCHAR(256) NOT NULL,
    gender     VARCHAR(64) ENCODE BYTEDICT NOT NULL,
    level      VARCHAR(8) ENCODE BYTEDICT NOT NULL
)
DISTSTYLE ALL
SORTKEY ( user_id )`

const createSongsSQL = `
CREATE TABLE songs (
    song_id   VARCHAR(20) NOT NULL PRIMARY KEY,
    title     VARCHAR(256) NOT NULL,
    artist_id VARCHAR(20) NOT NULL,
    year      INTEGER NOT NULL,
    duration  NUMERIC(8,4) NOT NULL
)
DISTSTYLE ALL
SORTKEY ( year )`

const createArtistsSQL = `
CREATE TABLE artists (
    artist_id VARCHAR(20) NOT NULL PRIMARY KEY,
    name      VARCHAR(256) NOT NULL,
    location  VARCHAR(256),
    latitude  NUMERIC(9,6),
    longitude NUMERIC(9,6)
)
DISTSTYLE ALL
SORTKEY ( artist_id )`

const createTimeSQL = `
CREATE TABLE time (
    start_time TIMESTAMP NOT NULL PRIMARY KEY,
    hour       INTEGER NOT NULL,
    day        INTEGER NOT NULL,
    week       INTEGER NOT NULL,
    month      INTEGER NOT NULL,
    year       INTEGER NOT NULL,
    weekday    VARCHAR(9) ENCODE BYTEDICT NOT NULL
)
DISTSTYLE KEY
DISTKEY ( start_time )
SORTKEY ( start_time )`

// Tables lists the warehouse tables in declaration order: staging tables
// first, then the fact table, then the dimensions.
var Tables = []string{
	"staging_events",
	"staging_songs",
	"songplays",
	"users",
	"songs",
	"artists",
	"time",
}

// DropStatements returns the ordered DROP TABLE IF EXISTS statements.
// Dropping is idempotent on absence.
func DropStatements() []Statement {
	stmts := make([]Statement, 0, len(Tables))
	for _, table := range Tables {
		stmts = append(stmts, Statement{
			Name: "drop_" + table,
			SQL:  "DROP TABLE IF EXISTS " + table,
		})
	}
	return stmts
}

// CreateStatements returns the ordered CREATE TABLE statements.
// Any existing data is expected to have been dropped first.
func CreateStatements() []Statement {
	return []Statement{
		{Name: "create_staging_events", SQL: createStagingEventsSQL},
		{Name: "create_staging_songs", SQL: createStagingSongsSQL},
		{Name: "create_songplays", SQL: createSongplaysSQL},
		{Name: "create_users", SQL: createUsersSQL},
		{Name: "create_songs", SQL: createSongsSQL},
		{Name: "create_artists", SQL: createArtistsSQL},
		{Name: "create_time", SQL: createTimeSQL},
	}
}
