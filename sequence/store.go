package sequence

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// Statement types.
const (
	StatementBuild uint8 = iota
	StatementPush
	StatementUnshift
	StatementPop
	StatementShift
	StatementReverse
	StatementSlice
	StatementSplice
	statementUnknown
)

// A Statement represents an operation to perform on the sequence stored
// under Key. Fields not used by the operation are ignored:
//
//	StatementBuild    Value, Count
//	StatementPush     Value
//	StatementUnshift  Value
//	StatementPop      -
//	StatementShift    -
//	StatementReverse  -
//	StatementSlice    Start, End
//	StatementSplice   Start, Count, Values
type Statement[T any] struct {
	Key               string
	Type              uint8
	Value             T
	Values            []T
	Start             int
	End               int
	Count             int
	CreateIfNotExists bool
}

// A Store represents a collection of Sequences. A Store can be used simultaneously
// from multiple goroutines.
type Store[T any] struct {
	m  map[string]Sequence[T]
	mu sync.RWMutex
}

// NewStore creates and initializes a new Store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{m: make(map[string]Sequence[T])}
}

// New adds an empty Sequence to the store using key as its identifier. If a
// Sequence already exists for the identifier it is silently replaced.
func (s *Store[T]) New(key string) {
	s.mu.Lock()
	s.m[key] = Sequence[T]{}
	s.mu.Unlock()
}

// Add adds x to the store using key as its identifier. If a Sequence already
// exists for the identifier it is silently replaced.
func (s *Store[T]) Add(key string, x Sequence[T]) {
	s.mu.Lock()
	s.m[key] = x
	s.mu.Unlock()
}

// Get returns the Sequence associated to key. The second return value is
// true if the key exists in the store and false if not.
func (s *Store[T]) Get(key string) (Sequence[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	x, ok := s.m[key]
	return x, ok
}

// Delete removes the Sequence associated to key, if any.
func (s *Store[T]) Delete(key string) {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
}

// Execute executes a statement against the store, returning an error if the
// statement cannot be executed.
func (s *Store[T]) Execute(statement Statement[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.executeUnsafe(statement)
}

// Batch executes multiple statements against the store, in order. Individual
// errors are non blocking but if one or more statements could not be executed
// the method will return a slice holding information about each individual
// error, along with a global error.
func (s *Store[T]) Batch(statements []Statement[T]) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var report []string
	for i, v := range statements {
		if err := s.executeUnsafe(v); err != nil {
			report = append(report, fmt.Sprintf("%s, at index %d", err, i))
		}
	}
	if len(report) > 0 {
		return report, errors.New("some operations could not be completed")
	}
	return report, nil
}

// Keys returns the identifiers known in the store, in ascending order.
func (s *Store[T]) Keys() []string {
	s.mu.RLock()
	keys := make([]string, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	s.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

// executeUnsafe executes a statement against the store, returning an error if the
// statement cannot be executed. This method is not goroutine-safe. The caller is
// responsible for properly acquiring / releasing the lock on the store.
func (s *Store[T]) executeUnsafe(statement Statement[T]) error {
	if statement.Type >= statementUnknown {
		return errors.Wrapf(ErrUnsupported, "statement type %d", statement.Type)
	}
	x, ok := s.m[statement.Key]
	if !ok && statement.Type != StatementBuild && !statement.CreateIfNotExists {
		return errors.Wrapf(ErrNotFound, "key %q", statement.Key)
	}
	switch statement.Type {
	case StatementBuild:
		x = Build(statement.Value, statement.Count)
	case StatementPush:
		x = x.Push(statement.Value)
	case StatementUnshift:
		x = x.Unshift(statement.Value)
	case StatementPop:
		x = x.Pop()
	case StatementShift:
		x = x.Shift()
	case StatementReverse:
		x = x.Reverse()
	case StatementSlice:
		x = x.Slice(statement.Start, statement.End)
	case StatementSplice:
		x = x.Splice(statement.Start, statement.Count, statement.Values...)
	}
	s.m[statement.Key] = x
	return nil
}
