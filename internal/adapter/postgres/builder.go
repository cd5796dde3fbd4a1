package postgres

import sq "github.com/Masterminds/squirrel"

// Builder returns a squirrel statement builder using PostgreSQL $n placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}
