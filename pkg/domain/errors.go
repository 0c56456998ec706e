package domain

import "errors"

// ErrTapeAllocation is returned when a tape buffer cannot be created.
var ErrTapeAllocation = errors.New("tape allocation failed")

// ErrInvalidTable is returned by Table.Validate for malformed tables.
var ErrInvalidTable = errors.New("invalid transition table")

// ErrUnknownOperation is returned when an operator is not one of + - * /.
var ErrUnknownOperation = errors.New("unknown operation")

// ErrInvalidOperand is returned when operand text is not a binary number.
var ErrInvalidOperand = errors.New("invalid operand")

// ErrDivisionByZero is returned when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// ErrNegativeDifference is returned when a subtraction would go below zero.
var ErrNegativeDifference = errors.New("first operand must be greater than or equal to the second for subtraction")

// ErrRunNotFound is returned when a run ID cannot be found in the store.
var ErrRunNotFound = errors.New("run not found")
