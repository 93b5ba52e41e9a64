package repository

import (
	"fmt"

	"github.com/noah-isme/examdesk-api/internal/models"
)

// joinOn renders an inner join from the alias of table from onto table to,
// following the declared foreign key. Undeclared relations panic, so every
// clause is built once at package init.
func joinOn(from, fromAlias, to, toAlias string) string {
	return renderJoin("JOIN", from, fromAlias, to, toAlias)
}

// leftJoinOn is joinOn for optional relations.
func leftJoinOn(from, fromAlias, to, toAlias string) string {
	return renderJoin("LEFT JOIN", from, fromAlias, to, toAlias)
}

func renderJoin(kind, from, fromAlias, to, toAlias string) string {
	fk := models.MustRelation(from, to)
	return fmt.Sprintf("%s %s %s ON %s.%s = %s.%s", kind, to, toAlias, toAlias, fk.ReferencedColumn, fromAlias, fk.Column)
}
