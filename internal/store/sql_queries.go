// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-snippet-box/models"
)

const (
	usersTable    = "users"
	snippetsTable = "snippets"
)

var (
	userColumns    = []string{"account_id", "secret_hash", "created_at"}
	snippetColumns = []string{"id", "owner_id", "title", "description", "category", "code", "created_at", "updated_at"}
)

// likeEscaper escapes LIKE wildcards so search text matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.AccountID, user.SecretHash, user.CreatedAt).
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, accountID string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
}

func buildCreateSnippetQuery(b sq.StatementBuilderType, s models.Snippet) (string, []any, error) {
	return b.Insert(snippetsTable).
		Columns(snippetColumns...).
		Values(s.ID, s.OwnerID, s.Title, s.Description, s.Category, s.Code, s.CreatedAt, s.UpdatedAt).
		ToSql()
}

func buildFindSnippetQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(snippetColumns...).
		From(snippetsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildUpdateOwnedSnippetQuery matches on id and owner in one predicate and
// returns the updated row.
func buildUpdateOwnedSnippetQuery(b sq.StatementBuilderType, s models.Snippet) (string, []any, error) {
	return b.Update(snippetsTable).
		Set("title", s.Title).
		Set("description", s.Description).
		Set("category", s.Category).
		Set("code", s.Code).
		Set("updated_at", s.UpdatedAt).
		Where(sq.Eq{"id": s.ID, "owner_id": s.OwnerID}).
		Suffix("RETURNING " + strings.Join(snippetColumns, ", ")).
		ToSql()
}

func buildDeleteOwnedSnippetQuery(b sq.StatementBuilderType, id, ownerID string) (string, []any, error) {
	return b.Delete(snippetsTable).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
}

// buildListSnippetsQuery selects a page newest first. Ties on created_at are
// broken by id so the order is stable within a page; the cursor is
// created_at only, so rows sharing the boundary timestamp are skipped.
func buildListSnippetsQuery(b sq.StatementBuilderType, d dialect, f models.SnippetFilter) (string, []any, error) {
	q := b.Select(snippetColumns...).
		From(snippetsTable).
		Where(snippetConditions(d, f)).
		OrderBy("created_at DESC", "id DESC")

	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}

	return q.ToSql()
}

func buildCountSnippetsQuery(b sq.StatementBuilderType, d dialect, f models.SnippetFilter) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(snippetsTable).
		Where(snippetConditions(d, f)).
		ToSql()
}

func buildCountByCategoryQuery(b sq.StatementBuilderType, d dialect, search string) (string, []any, error) {
	return b.Select("category", "COUNT(*)").
		From(snippetsTable).
		Where(snippetConditions(d, models.SnippetFilter{Search: search})).
		GroupBy("category").
		OrderBy("category").
		ToSql()
}

// snippetConditions turns a filter into a WHERE clause. An empty filter
// yields an always-true conjunction.
func snippetConditions(d dialect, f models.SnippetFilter) sq.And {
	conds := sq.And{}

	if f.OwnerID != "" {
		conds = append(conds, sq.Eq{"owner_id": f.OwnerID})
	}
	if f.Category != "" {
		conds = append(conds, sq.Eq{"category": f.Category})
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		if d.foldPattern != nil {
			search = d.foldPattern(search)
		}
		conds = append(conds, sq.Expr(d.titleMatch, "%"+likeEscaper.Replace(search)+"%"))
	}
	if f.Before != nil {
		conds = append(conds, sq.Lt{"created_at": f.Before.UTC()})
	}

	return conds
}

// dbTime normalizes a timestamp to the precision every backend keeps.
func dbTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
