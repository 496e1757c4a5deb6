// Package models defines the client-side data model of the LawLink
// marketplace: sessions, lawyers, appointments, documents, conversations,
// dashboard feeds, cases and feedback. JSON tags follow the backend's
// camelCase payloads.
package models
