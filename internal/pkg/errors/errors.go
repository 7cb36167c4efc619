package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrEmailTaken используется при попытке регистрации с уже занятым email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUnknownEmail используется при входе с email, которого нет в базе.
	ErrUnknownEmail = errors.New("unknown email")

	// ErrInvalidPassword используется, когда пароль не совпадает с хешем.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrNoActiveQuiz используется при сдаче теста без запущенной викторины
	// (состояние уже оценено и очищено либо не создавалось вовсе).
	ErrNoActiveQuiz = errors.New("no active quiz for this session")

	// ErrSourceUnavailable используется, когда внешний API вопросов недоступен,
	// вернул не-2xx статус или некорректный JSON.
	ErrSourceUnavailable = errors.New("trivia source unavailable")

	// ErrMailDelivery используется, когда не удалось отправить письмо через SMTP-релей.
	ErrMailDelivery = errors.New("mail delivery failed")
)
