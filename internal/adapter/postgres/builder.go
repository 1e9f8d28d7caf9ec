package postgres

import "github.com/Masterminds/squirrel"

// Builder is the statement builder for dynamic queries, using $n placeholders.
var Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
