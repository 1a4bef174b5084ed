package repos

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"wecamp/internal/domain"
	"wecamp/internal/kvstore"
)

// Storage slot keys. Each repository owns exactly one.
const (
	KeyGear            = "gear"
	KeyCampsites       = "campsites"
	KeyBlogPosts       = "blogPosts"
	KeyCategories      = "categories"
	KeyBrands          = "brands"
	KeyColors          = "colors"
	KeyReviews         = "reviews"
	KeyMessages        = "messages"
	KeyAppointments    = "appointments"
	KeyNewsletter      = "newsletter"
	KeyReferenceBrands = "referenceBrands"
	KeyReferenceImages = "referenceImages"
	KeyUsers           = "users"
)

func newID() string { return uuid.NewString() }

func nowUTC() string { return time.Now().UTC().Format(time.RFC3339) }

// record constrains a pointer to any entity embedding domain.Meta.
type record[T any] interface {
	*T
	EntityID() string
	MetaVersion() int
	Init(id, now string)
	Touch(now string)
}

// collection is the shared slot plumbing under every typed repository:
// decode on load (seeding the slot on first access), encode on save.
// The loaded slice is a snapshot; callers never share it.
type collection[T any, PT record[T]] struct {
	store  kvstore.Store
	key    string
	entity string
	seed   func() []T
}

func (c *collection[T, PT]) load(ctx context.Context) ([]T, error) {
	data, ok, err := c.store.Load(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		var list []T
		if c.seed != nil {
			list = c.seed()
		}
		if err := c.save(ctx, list); err != nil {
			return nil, err
		}
		return list, nil
	}
	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *collection[T, PT]) save(ctx context.Context, list []T) error {
	if list == nil {
		list = []T{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return &domain.PersistenceError{Key: c.key, Err: err}
	}
	return c.store.Save(ctx, c.key, data)
}

func (c *collection[T, PT]) all(ctx context.Context) ([]T, error) {
	return c.load(ctx)
}

func (c *collection[T, PT]) byID(ctx context.Context, id string) (T, error) {
	var zero T
	list, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	for i := range list {
		if PT(&list[i]).EntityID() == id {
			return list[i], nil
		}
	}
	return zero, &domain.NotFoundError{Entity: c.entity, ID: id}
}

// insert appends a freshly stamped record. dup, when non-nil, is asked about
// every existing record and returns the violation if the new one collides.
func (c *collection[T, PT]) insert(ctx context.Context, item T, dup func(existing T) *domain.DuplicateError) (T, error) {
	var zero T
	list, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	if dup != nil {
		for i := range list {
			if e := dup(list[i]); e != nil {
				return zero, e
			}
		}
	}
	PT(&item).Init(newID(), nowUTC())
	list = append(list, item)
	if err := c.save(ctx, list); err != nil {
		return zero, err
	}
	return item, nil
}

// update applies mutate to the record in place, bumping updatedAt and
// version. expect > 0 demands that exact stored version, rejecting stale
// writers with ConflictError. check, when non-nil, validates the mutated
// list (uniqueness against siblings) before anything persists.
func (c *collection[T, PT]) update(ctx context.Context, id string, expect int, mutate func(*T) error, check func(list []T, idx int) error) (T, error) {
	var zero T
	list, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	idx := -1
	for i := range list {
		if PT(&list[i]).EntityID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return zero, &domain.NotFoundError{Entity: c.entity, ID: id}
	}
	if expect > 0 {
		if v := PT(&list[idx]).MetaVersion(); v != expect {
			return zero, &domain.ConflictError{Entity: c.entity, ID: id, Expected: expect, Actual: v}
		}
	}
	if err := mutate(&list[idx]); err != nil {
		return zero, err
	}
	if check != nil {
		if err := check(list, idx); err != nil {
			return zero, err
		}
	}
	PT(&list[idx]).Touch(nowUTC())
	if err := c.save(ctx, list); err != nil {
		return zero, err
	}
	return list[idx], nil
}

// remove deletes the record. Deleting an absent id is an error, not a no-op.
// No cascade: records elsewhere that point at this id are left dangling.
func (c *collection[T, PT]) remove(ctx context.Context, id string) error {
	list, err := c.load(ctx)
	if err != nil {
		return err
	}
	idx := -1
	for i := range list {
		if PT(&list[i]).EntityID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &domain.NotFoundError{Entity: c.entity, ID: id}
	}
	list = append(list[:idx], list[idx+1:]...)
	return c.save(ctx, list)
}

func (c *collection[T, PT]) count(ctx context.Context) (int, error) {
	list, err := c.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(list), nil
}
