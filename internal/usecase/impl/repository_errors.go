package impl

import (
	domainerrors "learnhub/internal/domain/errors"
	"learnhub/internal/domain/repository"
	"learnhub/internal/errors"
)

// translateRepoError converts repository sentinels into application errors.
// notFound is returned for the collection's not found sentinel; anything unknown keeps
// its stack and becomes an internal error in the error middleware.
func translateRepoError(err error, notFound *domainerrors.BaseError, msg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrInvalidID):
		return errors.Wrap(domainerrors.ErrInvalidID, msg)
	case isNotFound(err):
		return errors.Wrap(notFound, msg)
	case errors.Is(err, repository.ErrDuplicatePhone):
		return errors.Wrap(domainerrors.ErrPhoneAlreadyRegistered, msg)
	case errors.Is(err, repository.ErrDuplicateIDNumber):
		return errors.Wrap(domainerrors.ErrIDNumberAlreadyRegistered, msg)
	default:
		return errors.Wrap(err, msg)
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrUserNotFound) ||
		errors.Is(err, repository.ErrCategoryNotFound) ||
		errors.Is(err, repository.ErrSubCategoryNotFound) ||
		errors.Is(err, repository.ErrLessonNotFound)
}

// validationError reports invalid input with the reason as details.
func validationError(reason error) error {
	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(reason.Error()))
}
