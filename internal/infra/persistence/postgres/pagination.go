package postgres

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"learnhub/internal/domain/entity"
	"learnhub/internal/domain/repository"
	"learnhub/internal/errors"
)

// parseID converts a path id into the UUID primary key.
func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, repository.ErrInvalidID
	}

	return parsed, nil
}

// newID returns a time-ordered primary key.
func newID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// paginate counts the rows matched by query and loads one page of them into dest.
// page must already be normalized; SortBy is a column name from the allowlist.
func paginate[M any](query *gorm.DB, page entity.PageRequest, dest *[]M) (int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "count rows")
	}

	err := query.
		Order(clause.OrderByColumn{
			Column: clause.Column{Name: page.SortBy},
			Desc:   page.Order == entity.SortDesc,
		}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: page.Order == entity.SortDesc}).
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(dest).Error
	if err != nil {
		return 0, errors.Wrap(err, "find rows")
	}

	return total, nil
}

func toPage[M any, E any](models []M, total int64, page entity.PageRequest, mapFn func(*M) E) *entity.Page[E] {
	items := make([]E, 0, len(models))
	for i := range models {
		items = append(items, mapFn(&models[i]))
	}

	return &entity.Page[E]{
		Items: items,
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
	}
}
