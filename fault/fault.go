// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type CheckError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrBalanceViolation      = CheckError("node balance differs from sub-tree heights")
	ErrCountMismatch         = CheckError("node count does not match tree size")
	ErrDatabaseNotOpen       = ProcessError("database is not open")
	ErrDatabaseVersion       = ProcessError("incompatible database version")
	ErrEmptyKeyRange         = InvalidError("key range is empty")
	ErrEmptyWeights          = InvalidError("no weights supplied")
	ErrInputTooSmall         = InvalidError("input is smaller than the required minimum")
	ErrInvalidConfiguration  = InvalidError("configuration file must return a table")
	ErrInvalidCount          = InvalidError("invalid count")
	ErrInvalidDataDirectory  = InvalidError("invalid data directory")
	ErrInvalidFanoMethod     = InvalidError("invalid fano method")
	ErrInvalidFileName       = InvalidError("file name must not contain a path")
	ErrInvalidFormat         = InvalidError("invalid report format")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidTextStyle      = InvalidError("invalid text style")
	ErrKeyRangeTooSmall      = InvalidError("key range is smaller than the number of unique keys")
	ErrMatrixMismatch        = CheckError("optimal tree differs from its matrices")
	ErrMismatchedWeights     = InvalidError("number of weights differs from number of keys")
	ErrNegativeWeight        = InvalidError("weight is negative")
	ErrNoSymbols             = InvalidError("no symbols to encode")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrNotFoundReport        = NotFoundError("report is not found")
	ErrOrderViolation        = CheckError("keys are not in strictly ascending order")
	ErrRotationRatioExceeded = ProcessError("rotation ratio is above its bound")
	ErrSymbolNotInCode       = NotFoundError("symbol is not in the code table")
	ErrTransactionInUse      = ProcessError("transaction already in use")
	ErrUndecodableBits       = ProcessError("bit sequence does not decode to a symbol")
	ErrUnsortedKeys          = InvalidError("keys are not sorted")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e CheckError) Error() string    { return string(e) }

// determine the class of an error, wrapped errors are unwrapped
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
func IsErrCheck(e error) bool    { var t CheckError; return errors.As(e, &t) }
