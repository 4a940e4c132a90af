// Package main provides the entry point for the greeting settings service.
// It runs a small web server using the Fiber framework that stores a single
// name suffix in an embedded SQLite database and exposes it through a REST
// API consumed by an embedded single-page client. The application uses gorm
// for data persistence and seeds the default suffix on every cold start.
package main
