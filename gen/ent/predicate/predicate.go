// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Application is the predicate function for application builders.
type Application func(*sql.Selector)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// Bank is the predicate function for bank builders.
type Bank func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
