// Package client is the remote data gateway of the LawLink client.
//
// # Overview
//
// HTTPClient issues JSON requests against the marketplace REST API, attaches
// the bearer token supplied by a TokenSource and maps failures onto a small
// error vocabulary:
//
//   - ErrUnavailable: the server could not be reached (or answered 502-504).
//   - ErrUnauthorized: 401/403, or a protected call made without a session.
//   - *APIError: any other non-2xx answer, carrying the server's message.
//
// Read paths usually go through FetchWithFallback, which always yields a
// value: the server payload on success, a sample dataset otherwise.
//
// Documents are uploaded either as a streamed multipart request with
// progress reporting, or straight to S3-compatible object storage followed
// by a registration call (see S3Uploader).
package client
