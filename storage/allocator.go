package storage

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
)

const (
	defaultMaxAttempts = 64
	collisionRetries   = 3
)

// ErrAllocationExhausted is matched by every AllocationExhaustedError.
var ErrAllocationExhausted = errors.New("id allocation exhausted")

// AllocationExhaustedError is returned when no free key was found within the attempt budget.
type AllocationExhaustedError struct {
	Table    string
	Attempts int
}

func (e *AllocationExhaustedError) Error() string {
	return fmt.Sprintf("no free id in %s after %d attempts", e.Table, e.Attempts)
}

func (e *AllocationExhaustedError) Is(target error) bool { return target == ErrAllocationExhausted }

// IDSpec describes where an entity's key lives and what range it is drawn from.
// Width 0 means an integer key; a positive Width means a zero-padded string key.
type IDSpec struct {
	Table  string
	Column string
	Min    int64
	Max    int64
	Width  int
}

// Key ranges used across the schema.
var (
	UserIDs     = IDSpec{Table: "users_auth", Column: "user_id", Min: 100000, Max: 999999}
	FarmIDs     = IDSpec{Table: "farms", Column: "farm_id", Min: 1, Max: 999999, Width: 6}
	CropIDs     = IDSpec{Table: "user_crops", Column: "user_crop_id", Min: 1, Max: 999999, Width: 6}
	DiseaseIDs  = IDSpec{Table: "diseases", Column: "disease_id", Min: 10000, Max: 99999}
	RemedyIDs   = IDSpec{Table: "remedies", Column: "remedy_id", Min: 10000, Max: 99999}
	ImageIDs    = IDSpec{Table: "images", Column: "image_id", Min: 10000, Max: 99999}
	AnalysisIDs = IDSpec{Table: "disease_analysis_results", Column: "id", Min: 10000, Max: 99999}
	SubsidyIDs  = IDSpec{Table: "subsidies", Column: "id", Min: 10000, Max: 99999}
)

// MasterIDs is the five-digit range used by reference tables.
func MasterIDs(table, column string) IDSpec {
	return IDSpec{Table: table, Column: column, Min: 10000, Max: 99999}
}

// Key is an allocated identifier. It binds as int64 or as a padded string
// depending on the spec it came from.
type Key struct {
	n     int64
	width int
}

func (k Key) Int() int64 { return k.n }

func (k Key) String() string {
	if k.width > 0 {
		return fmt.Sprintf("%0*d", k.width, k.n)
	}
	return strconv.FormatInt(k.n, 10)
}

// Value implements driver.Valuer.
func (k Key) Value() (driver.Value, error) {
	if k.width > 0 {
		return k.String(), nil
	}
	return k.n, nil
}

// KeyLookup reports whether key is already taken.
type KeyLookup func(ctx context.Context, key Key) (bool, error)

// Observer receives one call per allocation.
type Observer interface {
	ObserveAllocation(table string, attempts int, exhausted bool)
	ObserveCollisionRetry(table string)
}

// Allocator draws random keys from a fixed range until one is free.
type Allocator struct {
	spec        IDSpec
	maxAttempts int
	intN        func(n int64) int64
	observer    Observer
}

type AllocatorOption func(*Allocator)

func WithMaxAttempts(n int) AllocatorOption {
	return func(a *Allocator) {
		if n > 0 {
			a.maxAttempts = n
		}
	}
}

// WithRandSource replaces the random source; fn must return a value in [0, n).
func WithRandSource(fn func(n int64) int64) AllocatorOption {
	return func(a *Allocator) { a.intN = fn }
}

func WithObserver(o Observer) AllocatorOption {
	return func(a *Allocator) { a.observer = o }
}

func NewAllocator(spec IDSpec, opts ...AllocatorOption) *Allocator {
	a := &Allocator{
		spec:        spec,
		maxAttempts: defaultMaxAttempts,
		intN:        rand.Int64N,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Allocator) Spec() IDSpec { return a.spec }

// Next draws candidates until lookup reports one free.
func (a *Allocator) Next(ctx context.Context, lookup KeyLookup) (Key, error) {
	span := a.spec.Max - a.spec.Min + 1
	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return Key{}, err
		}
		key := Key{n: a.spec.Min + a.intN(span), width: a.spec.Width}
		taken, err := lookup(ctx, key)
		if err != nil {
			return Key{}, fmt.Errorf("lookup %s.%s: %w", a.spec.Table, a.spec.Column, err)
		}
		if !taken {
			a.observe(attempt, false)
			return key, nil
		}
	}
	a.observe(a.maxAttempts, true)
	return Key{}, &AllocationExhaustedError{Table: a.spec.Table, Attempts: a.maxAttempts}
}

// Allocate checks candidates with a point lookup on q.
func (a *Allocator) Allocate(ctx context.Context, q DBTX) (Key, error) {
	return a.Next(ctx, SQLLookup(q, a.spec))
}

// RetryOnCollision reruns fn when it fails on a primary key collision in the
// allocator's table. fn must start its own transaction so each attempt is fresh.
func (a *Allocator) RetryOnCollision(ctx context.Context, fn func() error) error {
	var err error
	for i := 0; i < collisionRetries; i++ {
		err = fn()
		if err == nil || !IsKeyCollision(err, a.spec.Table) {
			return err
		}
		if a.observer != nil {
			a.observer.ObserveCollisionRetry(a.spec.Table)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
	return err
}

func (a *Allocator) observe(attempts int, exhausted bool) {
	if a.observer != nil {
		a.observer.ObserveAllocation(a.spec.Table, attempts, exhausted)
	}
}

// SQLLookup checks a key with SELECT 1 on the spec's table.
func SQLLookup(q DBTX, spec IDSpec) KeyLookup {
	query := fmt.Sprintf("SELECT 1 FROM %s WHERE %s = $1", spec.Table, spec.Column)
	return func(ctx context.Context, key Key) (bool, error) {
		var one int
		err := q.QueryRowContext(ctx, query, key).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil
	}
}
