package hub

import (
	"errors"
	"fmt"
)

// ErrMissingAddress - попытка отправить письмо до того, как email автора разрешен
var ErrMissingAddress = errors.New("email получателя еще не разрешен")

// FetchError - отказ загрузки одной коллекции, вторая коллекция не затрагивается
type FetchError struct {
	Collection string
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("ошибка загрузки коллекции %s: %v", e.Collection, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// LookupError - отказ обогащения одного поста, изолирован от остальных
type LookupError struct {
	AuthorID string
	Err      error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("ошибка поиска автора %s: %v", e.AuthorID, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// DispatchError - отказ отправки контакта, сообщается пользователю, модалка все равно закрывается
type DispatchError struct {
	Err error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("ошибка отправки письма: %v", e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
