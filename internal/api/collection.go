package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// entity is a pointer to a model whose primary key the server assigns.
type entity[T any] interface {
	*T
	SetID(int64)
}

// collection serves list, get, create, update and delete for one model.
// Associations are never written through it; hooks handle dependent rows.
type collection[T any, PT entity[T]] struct {
	db       *gorm.DB
	notFound string
	preload  []string

	// check runs inside the write transaction before the row is stored.
	// id is 0 on create.
	check func(tx *gorm.DB, in PT, id int64) error
	// afterCreate runs in the create transaction once the row has its id.
	afterCreate func(tx *gorm.DB, in PT) error
	// beforeDelete removes rows that depend on id.
	beforeDelete func(tx *gorm.DB, id int64) error
}

func newCollection[T any, PT entity[T]](db *gorm.DB, notFound string) *collection[T, PT] {
	return &collection[T, PT]{db: db, notFound: notFound}
}

func (col *collection[T, PT]) mount(g *echo.Group, path string) {
	g.GET(path, col.list)
	g.POST(path, col.create)
	g.GET(path+"/:id", col.get)
	g.PUT(path+"/:id", col.update)
	g.DELETE(path+"/:id", col.delete)
}

func (col *collection[T, PT]) query(c echo.Context) *gorm.DB {
	q := col.db.WithContext(c.Request().Context())
	for _, p := range col.preload {
		q = q.Preload(p)
	}
	return q
}

func (col *collection[T, PT]) find(c echo.Context, id int64) (*T, error) {
	var out T
	err := col.query(c).First(&out, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound(col.notFound)
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (col *collection[T, PT]) list(c echo.Context) error {
	out := []T{}
	if err := col.query(c).Find(&out).Error; err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (col *collection[T, PT]) get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	out, err := col.find(c, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (col *collection[T, PT]) create(c echo.Context) error {
	in := PT(new(T))
	if err := bind(c, in); err != nil {
		return err
	}
	in.SetID(0)
	err := col.db.WithContext(c.Request().Context()).Transaction(func(tx *gorm.DB) error {
		if col.check != nil {
			if err := col.check(tx, in, 0); err != nil {
				return err
			}
		}
		if err := tx.Omit(clause.Associations).Create(in).Error; err != nil {
			return err
		}
		if col.afterCreate != nil {
			return col.afterCreate(tx, in)
		}
		return nil
	})
	if err != nil {
		return err
	}
	// reload so preloaded references come back filled in
	if err := col.query(c).First(in).Error; err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, in)
}

// update replaces the stored row. The id in the path wins over the body.
func (col *collection[T, PT]) update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if _, err := col.find(c, id); err != nil {
		return err
	}
	in := PT(new(T))
	if err := bind(c, in); err != nil {
		return err
	}
	in.SetID(id)
	err = col.db.WithContext(c.Request().Context()).Transaction(func(tx *gorm.DB) error {
		if col.check != nil {
			if err := col.check(tx, in, id); err != nil {
				return err
			}
		}
		return tx.Omit(clause.Associations).Save(in).Error
	})
	if err != nil {
		return err
	}
	if err := col.query(c).First(in).Error; err != nil {
		return err
	}
	return c.JSON(http.StatusOK, in)
}

func (col *collection[T, PT]) delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if _, err := col.find(c, id); err != nil {
		return err
	}
	err = col.db.WithContext(c.Request().Context()).Transaction(func(tx *gorm.DB) error {
		if col.beforeDelete != nil {
			if err := col.beforeDelete(tx, id); err != nil {
				return err
			}
		}
		return tx.Delete(new(T), id).Error
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
