// Package client talks to the admin HTTP API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Login/Register, users and projects CRUD, avatar upload.
//  2. A concrete HTTP implementation (see HTTPClient, built with New) whose
//     every request passes through one interceptor: the bearer token from
//     the Session is attached on the way out; on the way back a 401 logs the
//     session out, notifies the user and navigates to /login. The failure is
//     still returned to the caller.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Failures without a response are *Error and match ErrUnavailable. Non-2xx
// answers are *ResponseError and match ErrUnauthorized (401), ErrForbidden
// (403), ErrNotFound (404) or ErrUnavailable (502-504) with errors.Is.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. Concurrent 401s share a single
// logout/navigate run. All operations accept context.Context.
package client
