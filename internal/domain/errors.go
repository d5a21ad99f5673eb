package domain

import "errors"

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	// Ошибки валидации трат и платежей.
	ErrInvalidAmount  = errors.New("amount must be greater than zero")
	ErrEmptyMemberSet = errors.New("at least one member must be selected")
	ErrInvalidMember  = errors.New("invalid member selected")
	ErrSplitMismatch  = errors.New("sum of splits must equal total amount")
	ErrSelfPayment    = errors.New("payer and payee must differ")
	ErrNotGroupMember = errors.New("user is not a group member")
	ErrNotGroupAdmin  = errors.New("only group admin can change roles")
)
