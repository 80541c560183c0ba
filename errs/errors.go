package errs

import "github.com/napalu/goflag/i18n"

// Setup errors
var (
	ErrEmptyFlag          = i18n.NewError(ErrEmptyFlagKey)
	ErrEmptyAlias         = i18n.NewError(ErrEmptyAliasKey)
	ErrUnsupportedType    = i18n.NewError(ErrUnsupportedTypeKey)
	ErrFlagAlreadyExists  = i18n.NewError(ErrFlagAlreadyExistsKey)
	ErrAliasAlreadyExists = i18n.NewError(ErrAliasAlreadyExistsKey)
	ErrBindNil            = i18n.NewError(ErrBindNilKey)
	ErrParseInProgress    = i18n.NewError(ErrParseInProgressKey)
	ErrUnknownShell       = i18n.NewError(ErrUnknownShellKey)
)

// Parse outcomes
var (
	ErrUnknownFlag     = i18n.NewError(ErrUnknownFlagKey)
	ErrMissingValue    = i18n.NewError(ErrMissingValueKey)
	ErrUnexpectedValue = i18n.NewError(ErrUnexpectedValueKey)
	ErrInvalidValue    = i18n.NewError(ErrInvalidValueKey)
	ErrHelp            = i18n.NewError(ErrHelpKey)
	ErrValueRejected   = i18n.NewError(ErrValueRejectedKey)
)

// Conversion errors
var (
	ErrParseInt      = i18n.NewError(ErrParseIntKey)
	ErrParseUint     = i18n.NewError(ErrParseUintKey)
	ErrParseFloat    = i18n.NewError(ErrParseFloatKey)
	ErrParseOverflow = i18n.NewError(ErrParseOverflowKey)
	ErrParseDuration = i18n.NewError(ErrParseDurationKey)
	ErrParseTime     = i18n.NewError(ErrParseTimeKey)
	ErrParseUUID     = i18n.NewError(ErrParseUUIDKey)
	ErrParseSplit    = i18n.NewError(ErrParseSplitKey)
)
