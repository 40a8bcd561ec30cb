// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Assessment is the predicate function for assessment builders.
type Assessment func(*sql.Selector)
