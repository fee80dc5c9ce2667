// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised        = ExistsError("already initialised")
	CannotDecodeAccount       = InvalidError("cannot decode account")
	CertificateFileExists     = ExistsError("certificate file already exists")
	DatabaseIsNotSet          = ProcessError("database is not set")
	IncorrectCurrencyType     = InvalidError("incorrect currency type")
	InvalidAccountName        = InvalidError("invalid account name")
	InvalidAmount             = InvalidError("invalid amount")
	InvalidAsset              = InvalidError("invalid asset")
	InvalidCertificate        = InvalidError("invalid certificate")
	InvalidChain              = InvalidError("invalid chain")
	InvalidCount              = InvalidError("invalid count")
	InvalidCredential         = InvalidError("invalid credential")
	InvalidCursor             = InvalidError("invalid cursor")
	InvalidDeadlinePolicy     = InvalidError("invalid deadline policy")
	InvalidDeadlineWindow     = InvalidError("invalid deadline window")
	InvalidIpAddress          = InvalidError("invalid IP address")
	InvalidPortNumber         = InvalidError("invalid port number")
	InvalidPrivateKeyFile     = InvalidError("invalid private key file")
	InvalidPublicKeyFile      = InvalidError("invalid public key file")
	InvalidStructPointer      = InvalidError("invalid struct pointer")
	InvalidSymbol             = InvalidError("invalid currency symbol")
	KeyFileAlreadyExists      = ExistsError("key file already exists")
	MissingAuthority          = InvalidError("missing required authority")
	MissingParameters         = InvalidError("missing parameters")
	NotAvailable              = ProcessError("not available")
	NotInitialised            = NotFoundError("not initialised")
	PaymentRejected           = ProcessError("payment rejected by token service")
	RateLimiting              = InvalidError("rate limiting")
	SpotNotFound              = NotFoundError("spot not found")
	SpotRecordTruncated       = RecordError("spot record truncated")
	SpotRecordTrailingData    = RecordError("spot record has trailing data")
	TimeSlotCountTooLarge     = LengthError("time slot count too large")
	TooManyInlineActions      = LengthError("too many inline actions")
	TransactionAlreadyInUse   = ProcessError("transaction already in use")
	TransactionNotInUse       = ProcessError("transaction not in use")
	TransferTimeExpired       = InvalidError("transfer time expired")
	UnknownAction             = NotFoundError("unknown action")
	WrongContract             = InvalidError("action is not for this contract")
	WrongInlineAuthority      = InvalidError("inline action must be authorised by the contract")
	ZeroAccountNameNotAllowed = InvalidError("empty account name not allowed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
