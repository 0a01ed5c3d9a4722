// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRecipeNotFound is returned when a query, update or delete targets a
	// recipe that does not exist.
	ErrRecipeNotFound = errors.New("recipe was not found")

	// ErrFileNotSaved is returned when an upload could not be persisted by a
	// [FileStorage] backend.
	ErrFileNotSaved = errors.New("file was not saved")
)

// Connection pool errors.
var (
	// ErrNotInitialized is returned by [Pool] accessors before any connection
	// pool has been attached.
	ErrNotInitialized = errors.New("database pool is not initialized")

	// ErrConnectionUnverified is returned by [Pool.Initialize] when every
	// connection strategy failed and an unverified pool was attached.
	ErrConnectionUnverified = errors.New("database connectivity is unverified")

	// ErrPoolClosed is returned when Initialize is called after Close.
	ErrPoolClosed = errors.New("database pool is closed")

	// ErrInvalidDSN is returned when the connection settings cannot be parsed.
	ErrInvalidDSN = errors.New("invalid database connection settings")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
