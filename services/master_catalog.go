package services

import (
	"context"
	"fmt"
	"strings"

	"agriadmin/models"
	"agriadmin/storage"
	"agriadmin/utils"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// MasterRecord is a reference-table row with a server-assigned id and a unique label.
type MasterRecord interface {
	TableName() string
	KeyColumn() string
	SetKey(id int64)
	Label() *string
}

// Catalog serves list, add and delete for one reference table.
type Catalog[T any, PT interface {
	*T
	MasterRecord
}] struct {
	db       *gorm.DB
	ids      *storage.Allocator
	table    string
	key      string
	scope    func(*gorm.DB) *gorm.DB
	validate func(tx *gorm.DB, item *T) error
}

func NewCatalog[T any, PT interface {
	*T
	MasterRecord
}](db *gorm.DB, opts ...storage.AllocatorOption) *Catalog[T, PT] {
	var zero T
	rec := PT(&zero)
	return &Catalog[T, PT]{
		db:    db,
		ids:   storage.NewAllocator(storage.MasterIDs(rec.TableName(), rec.KeyColumn()), opts...),
		table: rec.TableName(),
		key:   rec.KeyColumn(),
	}
}

// WithListScope adjusts the list query, e.g. to join a display column.
func (c *Catalog[T, PT]) WithListScope(fn func(*gorm.DB) *gorm.DB) *Catalog[T, PT] {
	c.scope = fn
	return c
}

// WithValidator runs fn inside the add transaction before the insert.
func (c *Catalog[T, PT]) WithValidator(fn func(tx *gorm.DB, item *T) error) *Catalog[T, PT] {
	c.validate = fn
	return c
}

var titleCaser = cases.Title(language.English)

// NormalizeName collapses whitespace and title-cases a label.
func NormalizeName(s string) string {
	return titleCaser.String(strings.Join(strings.Fields(s), " "))
}

func (c *Catalog[T, PT]) List(ctx context.Context) ([]T, error) {
	ctx, cancel := utils.GetFastQueryContext(ctx)
	defer cancel()

	q := c.db.WithContext(ctx).Model(new(T))
	if c.scope != nil {
		q = c.scope(q)
	}
	items := []T{}
	if err := q.Order(c.table + "." + c.key).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", c.table, err)
	}
	return items, nil
}

// Add normalises the label, allocates an id and inserts the row.
func (c *Catalog[T, PT]) Add(ctx context.Context, item T) (T, error) {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	label := PT(&item).Label()
	*label = NormalizeName(*label)
	if *label == "" {
		return item, invalid("%s name is required", c.table)
	}

	err := c.ids.RetryOnCollision(ctx, func() error {
		return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if c.validate != nil {
				if err := c.validate(tx, &item); err != nil {
					return err
				}
			}
			key, err := c.ids.Next(ctx, storage.GormLookup(tx, c.ids.Spec()))
			if err != nil {
				return err
			}
			PT(&item).SetKey(key.Int())
			return tx.Create(&item).Error
		})
	})
	if err != nil {
		return item, classifyWrite(err)
	}
	return item, nil
}

func (c *Catalog[T, PT]) Delete(ctx context.Context, id int64) error {
	ctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	res := c.db.WithContext(ctx).Where(c.key+" = ?", id).Delete(new(T))
	if res.Error != nil {
		return classifyDelete(fmt.Errorf("delete %s: %w", c.table, res.Error))
	}
	if res.RowsAffected == 0 {
		return notFound(c.table, id)
	}
	return nil
}

// gormReferenceExists checks a reference through gorm so it works on any dialect.
func gormReferenceExists(tx *gorm.DB, ref storage.Reference, value any) error {
	var n int64
	if err := tx.Table(ref.Table).Where(ref.Column+" = ?", value).Count(&n).Error; err != nil {
		return fmt.Errorf("check %s: %w", ref.Field, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %v does not exist", storage.ErrInvalidReference, ref.Field, value)
	}
	return nil
}

// Catalogs groups the reference tables served by the API.
type Catalogs struct {
	SoilTypes    *Catalog[models.SoilType, *models.SoilType]
	Irrigations  *Catalog[models.Irrigation, *models.Irrigation]
	WaterSources *Catalog[models.WaterSource, *models.WaterSource]
	CropTypes    *Catalog[models.CropType, *models.CropType]
	Plants       *Catalog[models.Plant, *models.Plant]
	States       *Catalog[models.State, *models.State]
	Categories   *Catalog[models.UserCategory, *models.UserCategory]
}

func NewCatalogs(db *gorm.DB, opts ...storage.AllocatorOption) *Catalogs {
	plants := NewCatalog[models.Plant](db, opts...).
		WithListScope(func(q *gorm.DB) *gorm.DB {
			return q.Select("plants.*, ct.name AS crop_type").
				Joins("LEFT JOIN crop_types ct ON ct.croptype_id = plants.crop_type_id")
		}).
		WithValidator(func(tx *gorm.DB, p *models.Plant) error {
			if p.CropTypeID == nil {
				return nil
			}
			return gormReferenceExists(tx, storage.RefCropType, *p.CropTypeID)
		})

	return &Catalogs{
		SoilTypes:    NewCatalog[models.SoilType](db, opts...),
		Irrigations:  NewCatalog[models.Irrigation](db, opts...),
		WaterSources: NewCatalog[models.WaterSource](db, opts...),
		CropTypes:    NewCatalog[models.CropType](db, opts...),
		Plants:       plants,
		States:       NewCatalog[models.State](db, opts...),
		Categories:   NewCatalog[models.UserCategory](db, opts...),
	}
}
