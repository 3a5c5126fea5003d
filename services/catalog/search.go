// File: services/catalog/search.go
package catalog

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"coursestore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrEmptyQuery signals an empty or whitespace-only search query.
var ErrEmptyQuery = errors.New("search query must not be empty")

// BuildFilter translates a free-text query into a disjunctive lesson
// filter: case-insensitive substring match over title, location and
// description, plus exact-equality branches on the numeric fields when the
// whole query parses as a number. The query is escaped before becoming a
// pattern, so user input cannot construct wildcards or malformed regexes.
func BuildFilter(rawQuery string) (bson.M, error) {
	q := strings.TrimSpace(rawQuery)
	if q == "" {
		return nil, ErrEmptyQuery
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
	branches := []bson.M{
		{"title": pattern},
		{"location": pattern},
		{"description": pattern},
	}

	if price, err := strconv.ParseFloat(q, 64); err == nil {
		branches = append(branches, bson.M{"price": price})
	}
	if n, err := strconv.Atoi(q); err == nil {
		branches = append(branches,
			bson.M{"availableSeats": n},
			bson.M{"rating": n},
		)
	}

	return bson.M{"$or": branches}, nil
}

// SearchLessons builds the filter and runs it against the catalog.
func (s *DefaultCatalogService) SearchLessons(ctx context.Context, query string) ([]models.Lesson, error) {
	filter, err := BuildFilter(query)
	if err != nil {
		return nil, err
	}
	return s.Repo.Search(ctx, filter)
}
