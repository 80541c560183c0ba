// Package errs provides the translation keys and the translatable sentinel errors used
// throughout the goflag library.
package errs

const (
	prefixKey = "goflag"
)

const (
	ErrorPrefixKey    = prefixKey + ".error"
	ParseErrorPathKey = ErrorPrefixKey + ".parse"
	MessagePrefixKey  = prefixKey + ".msg"
)

// Setup errors: returned while options are being registered
const (
	ErrEmptyFlagKey          = ErrorPrefixKey + ".empty_flag"
	ErrEmptyAliasKey         = ErrorPrefixKey + ".empty_alias"
	ErrUnsupportedTypeKey    = ErrorPrefixKey + ".unsupported_type"
	ErrFlagAlreadyExistsKey  = ErrorPrefixKey + ".flag_already_exists"
	ErrAliasAlreadyExistsKey = ErrorPrefixKey + ".alias_already_exists"
	ErrBindNilKey            = ErrorPrefixKey + ".bind_nil"
	ErrParseInProgressKey    = ErrorPrefixKey + ".parse_in_progress"
	ErrUnknownShellKey       = ErrorPrefixKey + ".unknown_shell"
)

// Parse outcomes
const (
	ErrUnknownFlagKey     = ErrorPrefixKey + ".unknown_flag"
	ErrMissingValueKey    = ErrorPrefixKey + ".missing_value"
	ErrUnexpectedValueKey = ErrorPrefixKey + ".unexpected_value"
	ErrInvalidValueKey    = ErrorPrefixKey + ".invalid_value"
	ErrHelpKey            = ErrorPrefixKey + ".help_requested"
	ErrValueRejectedKey   = ErrorPrefixKey + ".value_rejected"
)

// Conversion errors
const (
	ErrParseIntKey      = ParseErrorPathKey + ".int"
	ErrParseUintKey     = ParseErrorPathKey + ".uint"
	ErrParseFloatKey    = ParseErrorPathKey + ".float"
	ErrParseOverflowKey = ParseErrorPathKey + ".overflow"
	ErrParseDurationKey = ParseErrorPathKey + ".duration"
	ErrParseTimeKey     = ParseErrorPathKey + ".time"
	ErrParseUUIDKey     = ParseErrorPathKey + ".uuid"
	ErrParseSplitKey    = ParseErrorPathKey + ".split"
)

// User interface messages
const (
	MsgDidYouMeanKey = MessagePrefixKey + ".did_you_mean"
	MsgTryHelpKey    = MessagePrefixKey + ".try_help"
	MsgUsageKey      = MessagePrefixKey + ".usage"
)
