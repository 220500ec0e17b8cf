package mysql

// Categories stored in destinations.category.
const (
	catCity   = "city"
	catTemple = "temple"
	catBeach  = "beach"
)

// -----------------------------------------------------------------------------
// SNAPSHOTS
// -----------------------------------------------------------------------------

const insertSnapshotSQL = `INSERT INTO snapshots (active) VALUES (0)`

const lockSnapshotSQL = `SELECT id FROM snapshots WHERE id = ? FOR UPDATE`

const activateSnapshotSQL = `UPDATE snapshots SET active = (id = ?)`

const activeSnapshotSQL = `
SELECT id
FROM snapshots
WHERE active = 1
ORDER BY id DESC
LIMIT 1
`

// Children first: snapshot FKs do not cascade.
const deleteOlderDestinationsSQL = `DELETE FROM destinations WHERE snapshot_id < ?`
const deleteOlderCountriesSQL = `DELETE FROM countries WHERE snapshot_id < ?`
const deleteOlderSnapshotsSQL = `DELETE FROM snapshots WHERE id < ?`

const discardDestinationsSQL = `
DELETE d FROM destinations d
JOIN snapshots s ON s.id = d.snapshot_id
WHERE d.snapshot_id = ? AND s.active = 0
`
const discardCountriesSQL = `
DELETE c FROM countries c
JOIN snapshots s ON s.id = c.snapshot_id
WHERE c.snapshot_id = ? AND s.active = 0
`
const discardSnapshotSQL = `DELETE FROM snapshots WHERE id = ? AND active = 0`

// -----------------------------------------------------------------------------
// WRITES
// -----------------------------------------------------------------------------

const insertCountrySQL = `
INSERT INTO countries (snapshot_id, name, position)
VALUES (?, ?, ?)
`

const insertDestinationPrefix = "INSERT INTO destinations\n  (snapshot_id, category, country_id, name, description, image_key, position)\nVALUES "

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const listCountriesSQL = `
SELECT id, name
FROM countries
WHERE snapshot_id = ?
ORDER BY position, id
`

// Declaration order inside each group is the position column.
const listDestinationsSQL = `
SELECT category, country_id, name, description, image_key
FROM destinations
WHERE snapshot_id = ?
ORDER BY position, id
`
