package repository

import (
	"errors"
	"fmt"

	"github.com/go-arrower/userposts/contexts/blog/internal/domain"
	"github.com/go-arrower/userposts/repository"
)

// mapError translates the errors of the generic repository into the errors of the domain.
func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return domain.ErrNotFound
	default:
		return fmt.Errorf("%w: %w", domain.ErrPersistenceFailed, err)
	}
}

// passThrough runs fn and remembers its error, so callbacks executed
// inside the generic repository can return their errors unchanged.
type passThrough struct {
	err error
}

func (p *passThrough) run(fn func() error) error {
	p.err = fn()

	return p.err
}

// result prefers the error of the callback over the error of the repository.
func (p *passThrough) result(err error) error {
	if p.err != nil {
		return p.err
	}

	return mapError(err)
}
