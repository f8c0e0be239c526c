// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ProcessError("already initialised")
	ErrBrokenParentLink     = InvalidError("node parent link does not resolve to its owner")
	ErrInvalidLoggerChannel = ProcessError("invalid logger channel")
	ErrOutOfOrderNode       = InvalidError("node values are out of order")
	ErrUnbalancedNode       = InvalidError("node sub-tree heights differ by more than one")
	ErrWrongCount           = InvalidError("stored value count does not match the tree total")
	ErrWrongExtrema         = InvalidError("cached minimum or maximum is not the extreme node")
	ErrWrongNodeHeight      = InvalidError("node height does not match its children")
	ErrZeroCountNode        = InvalidError("live node has a count below one")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string { return string(e) }
func (e ProcessError) Error() string { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
