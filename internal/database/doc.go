// Package database provides PostgreSQL connectivity and the score repository.
//
// Uses pgx for connection pooling. The scores schema is bootstrapped lazily on
// first use (CITEXT extension + scores table), and mutations are single atomic
// upserts so concurrent deltas to the same item never lose updates.
package database
