// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package multiset - an in-memory ordered multiset built on an AVL
// balanced tree with the addition of parent pointers to allow
// iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Duplicate values never create a second node, they increment a
// per-node count; each value is yielded count times by the ascending
// iterator.  The minimum and maximum values are cached so that reading
// either is O(1), the caches are only recomputed when the cached node
// itself is removed.
//
// Iterators hold non-owning references into the tree.  A cursor whose
// node has been structurally removed silently exhausts instead of
// faulting; this weak-consistency behaviour is part of the contract.
package multiset
