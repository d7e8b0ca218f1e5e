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
type OverflowError GenericError
type ProcessError GenericError
type RecordError GenericError

// the state transition errors, these are returned verbatim to the caller
var (
	CounterOverflow        = OverflowError("kitties count overflow")
	InvalidKittyId         = NotFoundError("invalid kitty id")
	InvalidSlot            = InvalidError("invalid slot")
	NotOwner               = InvalidError("user does not have the kitty")
	OwnerCountOverflow     = OverflowError("owner kitties count overflow")
	RequireDifferentParent = InvalidError("require different parent")
	UnresolvableRecipient  = NotFoundError("recipient cannot be resolved")
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	CannotDecodeAccount          = InvalidError("cannot decode account")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ChecksumMismatch             = ProcessError("checksum mismatch")
	DatabaseIsNotSet             = NotFoundError("database is not set")
	DatabaseVersionMismatch      = InvalidError("database version mismatch")
	DuplicateRequest             = ExistsError("duplicate request")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidGenomeLength          = LengthError("invalid genome length")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidKeyLength             = LengthError("invalid key length")
	InvalidKeyType               = InvalidError("invalid key type")
	InvalidNonce                 = InvalidError("nonce is outside the permitted window")
	InvalidOwner                 = InvalidError("invalid owner")
	InvalidRecord                = RecordError("invalid record")
	InvalidSeed                  = InvalidError("invalid seed")
	InvalidSignature             = InvalidError("invalid signature")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingParameters            = NotFoundError("missing parameters")
	NotAvailableInReadOnlyMode   = InvalidError("not available in read-only mode")
	NotInitialised               = NotFoundError("not initialised")
	NotPublicKey                 = InvalidError("not a public key")
	RateLimiting                 = InvalidError("rate limiting")
	SignatureTooLong             = LengthError("signature too long")
	TransactionInUse             = ProcessError("transaction already in use")
	TransactionNotStarted        = ProcessError("transaction not started")
	TruncatedRecord              = RecordError("truncated record")
	WrongNetworkForPublicKey     = InvalidError("wrong network for public key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e OverflowError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrOverflow(e error) bool { _, ok := e.(OverflowError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
