// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package unrolled

import "errors"

// ErrClosed is raised on operations on a closed List.
var ErrClosed = errors.New("list closed")

// ErrEmpty is raised when removing or peeking an element of an empty List.
var ErrEmpty = errors.New("list is empty")

// ErrIndexOutOfRange is raised when positional access falls outside of [0, Len()).
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrInvalidArgument is raised on nil items or nil List.
var ErrInvalidArgument = errors.New("invalid argument")
