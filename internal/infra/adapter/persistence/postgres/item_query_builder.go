package postgres

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"mig-catalog/internal/repository"
)

// ItemQueryBuilder assembles the filtered item queries. WHERE clauses are
// built once and shared by the list and count queries so the two can never
// disagree about which rows match.
type ItemQueryBuilder struct{}

func NewItemQueryBuilder() *ItemQueryBuilder {
	return &ItemQueryBuilder{}
}

const itemColumns = `id, name, description, price, category, created_at, updated_at`

// whereClause returns the WHERE fragment (without the keyword) and its
// arguments. An empty fragment means no filters apply.
func (b *ItemQueryBuilder) whereClause(f repository.ItemFilters) (string, []any) {
	var conditions []string
	var args []any

	if len(f.Categories) > 0 {
		args = append(args, pq.Array(f.Categories))
		conditions = append(conditions, fmt.Sprintf("category = ANY($%d)", len(args)))
	}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conditions = append(conditions,
			fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", n, n))
	}

	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		conditions = append(conditions, fmt.Sprintf("price >= $%d", len(args)))
	}

	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		conditions = append(conditions, fmt.Sprintf("price <= $%d", len(args)))
	}

	return strings.Join(conditions, " AND "), args
}

// orderClause maps the sort name to a deterministic ORDER BY. Unknown
// values fall back to newest-first. The id tiebreak keeps pagination
// stable across pages.
func (b *ItemQueryBuilder) orderClause(sort string) string {
	switch sort {
	case "price_asc":
		return "ORDER BY price ASC, id"
	case "price_desc":
		return "ORDER BY price DESC, id"
	case "name":
		return "ORDER BY name ASC, id"
	default:
		return "ORDER BY created_at DESC, id"
	}
}

// BuildList returns the paginated SELECT and its arguments.
func (b *ItemQueryBuilder) BuildList(f repository.ItemFilters, offset, limit int) (string, []any) {
	where, args := b.whereClause(f)

	var sb strings.Builder
	sb.WriteString("SELECT " + itemColumns + " FROM items")
	if where != "" {
		sb.WriteString(" WHERE " + where)
	}
	sb.WriteString(" " + b.orderClause(f.Sort))

	args = append(args, limit)
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	args = append(args, offset)
	sb.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))

	return sb.String(), args
}

// BuildCount returns the COUNT query and its arguments for the same filters.
func (b *ItemQueryBuilder) BuildCount(f repository.ItemFilters) (string, []any) {
	where, args := b.whereClause(f)
	query := "SELECT COUNT(*) FROM items"
	if where != "" {
		query += " WHERE " + where
	}
	return query, args
}
