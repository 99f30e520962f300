// Package client contains the client-side building blocks for gyulist.
//
// # Overview
//
// The package provides:
//  1. A typed HTTP client (see Client) whose namespaces mirror the server
//     routes and share request/response bodies with it through package api:
//     c.Cattle().ID(42).Status().Patch(ctx, body, Bearer(token)).
//  2. Response[T], which carries the status and raw body of every call.
//     A non-2xx answer is a normal result; only transport failures are
//     returned as errors.
//  3. WithToken, the authenticated request wrapper: it pulls the current
//     token from a TokenSource and hands it to the call.
//  4. Local persistence bootstrap for the CLI (InitDatabase, RunMigrations),
//     an SQLite database with embedded goose migrations.
//
// # Error Handling
//
// Sentinels callers can match with errors.Is: ErrUnauthorized,
// ErrNoToken and ErrRequestFailed. Transport failures are returned as the
// http.Client reported them.
//
// The client holds no mutable state and is safe for concurrent use. It does
// not validate input, retry, or apply timeouts beyond the caller's context.
package client
