// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// QueryEvent is the predicate function for queryevent builders.
type QueryEvent func(*sql.Selector)
