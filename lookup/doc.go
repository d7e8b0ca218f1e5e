// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package lookup - resolve a transfer recipient to an account
//
// a recipient is either a base58 account or an alias defined in a
// JSON file of the form:
//
//   {
//     "alice": "eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2"
//   }
//
// the file is reloaded whenever it changes on disk
package lookup
