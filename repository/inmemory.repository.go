package repository

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// NewMemoryRepository returns an implementation of Repository for the given entity E.
// It is expected that E has a field called `ID`, that is used as the primary key and can
// be overwritten by WithIDField.
// If your repository needs additional methods, you can embed this repo into our own implementation to extend
// your own repository easily to your use case.
//
// Warning: the consistency of MemoryRepository is not on paar with ACID guarantees of a RDBMS.
// Each method is atomic on its own, there are no transactions spanning multiple calls.
func NewMemoryRepository[E any, ID id](opts ...Option) *MemoryRepository[E, ID] {
	repo := &MemoryRepository[E, ID]{
		Mutex:     &sync.Mutex{},
		Data:      make(map[ID]E),
		order:     []ID{},
		currentID: *new(ID),
		repoConfig: repoConfig{
			idFieldName: "ID",
		},
	}

	for _, opt := range opts {
		opt(&repo.repoConfig)
	}

	idField := reflect.ValueOf(*new(E)).FieldByName(repo.idFieldName)
	if reflect.DeepEqual(idField, reflect.Value{}) { //nolint:govet,lll // is a fp and will be fixed, see: https://github.com/golang/go/issues/43993
		panic("entity does not have the field with name: " + repo.idFieldName)
	}

	return repo
}

// MemoryRepository implements Repository in a generic way. Use it to speed up your development and unit testing.
type MemoryRepository[E any, ID id] struct {
	// Mutex is embedded, so that repositories who extend MemoryRepository can lock the same mutex as other methods.
	*sync.Mutex

	// Data is the repository's collection. It is exposed in case you're extending the repository.
	// PREVENT using and accessing Data it directly, go through the repository methods.
	// If you write to Data, USE the Mutex to lock first.
	Data map[ID]E

	// order holds the ids of Data in insertion order.
	order []ID

	// currentID is the highest id ever allocated. It never decreases.
	currentID ID

	repoConfig
}

func (repo *MemoryRepository[E, ID]) getID(entity E) ID { //nolint:ireturn // fp, as it is not recognised even with "generic" setting
	idField := reflect.ValueOf(entity).FieldByName(repo.idFieldName)

	switch idField.Kind() { //nolint:exhaustive // all other kinds are prevented by the id constraint
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ID(idField.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ID(idField.Uint())
	default:
		panic("type of ID is not supported: " + idField.Kind().String())
	}
}

// nextID increments the counter. The caller has to hold the lock.
func (repo *MemoryRepository[E, ID]) nextID() ID { //nolint:ireturn // valid use of generics
	repo.currentID++

	return repo.currentID
}

// insert adds the entity at the end of the collection. The caller has to hold the lock.
func (repo *MemoryRepository[E, ID]) insert(id ID, entity E) {
	repo.Data[id] = entity
	repo.order = append(repo.order, id)
}

// remove deletes the entity with the given id. The caller has to hold the lock.
func (repo *MemoryRepository[E, ID]) remove(id ID) {
	delete(repo.Data, id)

	repo.order = slices.DeleteFunc(repo.order, func(oid ID) bool {
		return oid == id
	})
}

// CreateWithNextID allocates the next id and inserts the entity returned by build in one step,
// so concurrent callers never observe the same id and the collection order follows the ids.
func (repo *MemoryRepository[E, ID]) CreateWithNextID(_ context.Context, build func(id ID) E) (E, error) { //nolint:ireturn,lll // valid use of generics
	repo.Lock()
	defer repo.Unlock()

	id := repo.nextID()

	entity := build(id)
	if repo.getID(entity) != id {
		return *new(E), fmt.Errorf("entity does not carry the allocated id %v: %w", id, ErrSaveFailed)
	}

	repo.insert(id, entity)

	return entity, nil
}

// UpdateByID reads, changes and writes back the entity with the given id while holding the lock.
// The id of the entity cannot be changed by change.
func (repo *MemoryRepository[E, ID]) UpdateByID(_ context.Context, id ID, change func(entity *E)) (E, error) { //nolint:ireturn,lll // valid use of generics
	repo.Lock()
	defer repo.Unlock()

	entity, found := repo.Data[id]
	if !found {
		return *new(E), ErrNotFound
	}

	change(&entity)

	if repo.getID(entity) != id {
		return *new(E), fmt.Errorf("id of entity %v changed: %w", id, ErrSaveFailed)
	}

	repo.Data[id] = entity

	return entity, nil
}

// FindAll returns all entities in insertion order.
func (repo *MemoryRepository[E, ID]) FindAll(_ context.Context) ([]E, error) {
	repo.Lock()
	defer repo.Unlock()

	result := make([]E, 0, len(repo.order))

	for _, id := range repo.order {
		result = append(result, repo.Data[id])
	}

	return result, nil
}

// FindBy returns all entities matching cond in insertion order.
// If no entity matches, the result is empty and not an error.
func (repo *MemoryRepository[E, ID]) FindBy(_ context.Context, cond Condition[E]) ([]E, error) {
	repo.Lock()
	defer repo.Unlock()

	result := []E{}

	for _, id := range repo.order {
		if e := repo.Data[id]; cond(e) {
			result = append(result, e)
		}
	}

	return result, nil
}

func (repo *MemoryRepository[E, ID]) FindByID(_ context.Context, id ID) (E, error) { //nolint:ireturn,lll // valid use of generics
	repo.Lock()
	defer repo.Unlock()

	if e, ok := repo.Data[id]; ok {
		return e, nil
	}

	return *new(E), ErrNotFound
}

// IfExists calls fn with the entity while holding the lock, so the entity cannot be deleted
// until fn returns. It returns ErrNotFound without calling fn, if there is no entity with the id.
// fn must not call other methods of the same repository.
func (repo *MemoryRepository[E, ID]) IfExists(_ context.Context, id ID, fn func(entity E) error) error {
	repo.Lock()
	defer repo.Unlock()

	entity, found := repo.Data[id]
	if !found {
		return ErrNotFound
	}

	return fn(entity)
}

func (repo *MemoryRepository[E, ID]) Count(_ context.Context) (int, error) {
	repo.Lock()
	defer repo.Unlock()

	return len(repo.Data), nil
}

// DeleteByID removes the entity with the given id or returns ErrNotFound.
func (repo *MemoryRepository[E, ID]) DeleteByID(_ context.Context, id ID) error {
	repo.Lock()
	defer repo.Unlock()

	if _, found := repo.Data[id]; !found {
		return ErrNotFound
	}

	repo.remove(id)

	return nil
}

// DeleteByIDThen removes the entity with the given id and calls then with the removed entity,
// before the lock is released. Use it to remove dependent entities in another repository,
// so no caller can observe the entity gone while its dependents remain.
// The entity stays removed, even if then fails.
func (repo *MemoryRepository[E, ID]) DeleteByIDThen(_ context.Context, id ID, then func(entity E) error) error {
	repo.Lock()
	defer repo.Unlock()

	entity, found := repo.Data[id]
	if !found {
		return ErrNotFound
	}

	repo.remove(id)

	return then(entity)
}

// DeleteBy removes all entities matching cond and returns how many got removed.
// Matching no entity at all is not an error.
func (repo *MemoryRepository[E, ID]) DeleteBy(_ context.Context, cond Condition[E]) (int, error) {
	repo.Lock()
	defer repo.Unlock()

	removed := 0

	repo.order = slices.DeleteFunc(repo.order, func(id ID) bool {
		if !cond(repo.Data[id]) {
			return false
		}

		delete(repo.Data, id)
		removed++

		return true
	})

	return removed, nil
}
