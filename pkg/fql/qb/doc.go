// Package qb builds FQL SELECT statements through a chainable Query.
//
// By default package-level helpers use the built-in Facebook schema registry
// to expand `SELECT *` and `SELECT COUNT(*)` into explicit column lists.
// Use New(...) or FromFile(...) to bind a builder to another registry.
//
// Builder calls never fail on their own: the first invalid argument is kept on
// the Query and returned by Render.
package qb
