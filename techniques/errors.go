package techniques

import "fmt"

// ErrorType classifies technique errors.
type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeUnknownTechnique
	ErrorTypeNotInitialized
	ErrorTypeInvalidConfig
	ErrorTypeTemplate
	ErrorTypeApply
)

// Error is returned by the registry and by techniques.
type Error struct {
	Type      ErrorType
	Technique string
	Message   string
	Err       error
}

var (
	// ErrUnknownTechnique matches errors for IDs with no registered factory.
	ErrUnknownTechnique = &Error{Type: ErrorTypeUnknownTechnique}
	// ErrTechniqueNotInitialized matches errors for IDs with no live instance.
	ErrTechniqueNotInitialized = &Error{Type: ErrorTypeNotInitialized}
)

func (e *Error) Error() string {
	s := e.TypeString()
	if e.Technique != "" {
		s += " [" + e.Technique + "]"
	}
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s (%s): %v", s, e.Message, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", s, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", s, e.Message)
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the package sentinels by type.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Technique != "" || t.Message != "" || t.Err != nil {
		return false
	}
	return t.Type == e.Type
}

func (e *Error) TypeString() string {
	switch e.Type {
	case ErrorTypeUnknownTechnique:
		return "UnknownTechniqueError"
	case ErrorTypeNotInitialized:
		return "NotInitializedError"
	case ErrorTypeInvalidConfig:
		return "InvalidConfigError"
	case ErrorTypeTemplate:
		return "TemplateError"
	case ErrorTypeApply:
		return "ApplyError"
	default:
		return "UnknownError"
	}
}

// NewError creates a new Error.
func NewError(errType ErrorType, technique, message string, err error) *Error {
	return &Error{
		Type:      errType,
		Technique: technique,
		Message:   message,
		Err:       err,
	}
}
