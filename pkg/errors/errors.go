package errors

import (
	"fmt"
)

var (
	// JWT и токены
	ErrInvalidSigningMethod = fmt.Errorf("неверный метод подписи токена")
	ErrInvalidToken         = fmt.Errorf("недопустимый токен")
	ErrTokenExpired         = fmt.Errorf("срок действия токена истёк")
	ErrTokenNotYetValid     = fmt.Errorf("токен ещё не активен")
	ErrTokenIsNotAccess     = fmt.Errorf("токен не является access-токеном")

	// Авторизация
	ErrEmptyAuthHeader   = fmt.Errorf("заголовок авторизации отсутствует")
	ErrInvalidAuthHeader = fmt.Errorf("неверный формат заголовка авторизации")

	// Контекст
	ErrUserIDNotFoundInContext = fmt.Errorf("UserID не найден в контексте запроса")

	// Анкета и шаблоны
	ErrSessionNotFound  = fmt.Errorf("сессия редактирования не найдена или истекла")
	ErrUnknownField     = fmt.Errorf("неизвестное поле анкеты")
	ErrInvalidFieldType = fmt.Errorf("значение не подходит для поля анкеты")
	ErrNoPlaceholders   = fmt.Errorf("в документе нет плейсхолдеров для подстановки")
	ErrNotText          = fmt.Errorf("выбранная версия не является текстом")

	// Общие
	ErrNotFound = fmt.Errorf("запись не найдена")
)

// HttpError - ошибка с HTTP-кодом и сообщением для пользователя.
// Err и Context попадают только в лог.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}
