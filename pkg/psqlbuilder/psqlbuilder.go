// Package psqlbuilder squirrel-билдеры с плейсхолдерами PostgreSQL ($1, $2, ...)
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Insert начинает INSERT в таблицу
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

