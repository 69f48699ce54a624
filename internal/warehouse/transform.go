package warehouse

// The transforms derive the star schema from staging with set-based
// SELECT DISTINCT projections. Epoch-millisecond timestamps become
// calendar timestamps by adding ts/1000 seconds to the epoch origin;
// calendar attributes come from the engine's EXTRACT and TO_CHAR.
//
// The songplays join matches on exact title and artist-name equality.
// Events whose strings do not match any catalog row produce no fact row.

const insertSongplaysSQL = `
INSERT INTO songplays (start_time, user_id, level, song_id, artist_id, session_id, location, user_agent)
SELECT DISTINCT
    TIMESTAMP 'epoch' + (se.ts / 1000) * INTERVAL '1 second',
    se.userId AS user_id,
    se.level,
    ss.song_id,
    ss.artist_id,
    se.sessionId AS session_id,
    se.location,
    se.userAgent AS user_agent
FROM staging_events se
INNER JOIN staging_songs ss
    ON ss.title = se.song
    AND ss.artist_name = se.artist
WHERE se.page = 'NextSong'`

const insertUsersSQL = `
INSERT INTO users (user_id, first_name, last_name, gender, level)
SELECT DISTINCT
    userId AS user_id,
    firstName AS first_name,
    lastName AS last_name,
    gender,
    level
FROM staging_events
WHERE userId IS NOT NULL
AND page = 'NextSong'`

const insertSongsSQL = `
INSERT INTO songs (song_id, title, artist_id, year, duration)
SELECT DISTINCT
    song_id,
    title,
    artist_id,
    year,
    duration
FROM staging_songs
WHERE song_id IS NOT NULL`

const insertArtistsSQL = `
INSERT INTO artists (artist_id, name, location, latitude, longitude)
SELECT DISTINCT
    artist_id,
    artist_name AS name,
    artist_location AS location,
    artist_latitude AS latitude,
    artist_longitude AS longitude
FROM staging_songs
WHERE artist_id IS NOT NULL`

// Time rows are derived from every staged event, not just NextSong ones,
// so the time table may hold timestamps that never produced a fact row.
const insertTimeSQL = `
INSERT INTO time (start_time, hour, day, week, month, year, weekday)
SELECT DISTINCT
    TIMESTAMP 'epoch' + (ts / 1000) * INTERVAL '1 second' AS start_time,
    EXTRACT(HOUR FROM start_time) AS hour,
    EXTRACT(DAY FROM start_time) AS day,
    EXTRACT(WEEK FROM start_time) AS week,
    EXTRACT(MONTH FROM start_time) AS month,
    EXTRACT(YEAR FROM start_time) AS year,
    TO_CHAR(start_time, 'Day') AS weekday
FROM staging_events`

// InsertStatements returns the ordered fact and dimension loads.
// Rerunning them against populated tables is not supported; a fresh
// drop/create cycle must precede each run.
func InsertStatements() []Statement {
	return []Statement{
		{Name: "insert_songplays", SQL: insertSongplaysSQL},
		{Name: "insert_users", SQL: insertUsersSQL},
		{Name: "insert_songs", SQL: insertSongsSQL},
		{Name: "insert_artists", SQL: insertArtistsSQL},
		{Name: "insert_time", SQL: insertTimeSQL},
	}
}
