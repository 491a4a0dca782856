// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/treelab/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor to the start of a key range
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		maxRange: util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, excluded from the range
		},
	}
}

// NewPrefixCursor - initialise a cursor restricted to keys starting
// with prefix
func (p *PoolHandle) NewPrefixCursor(prefix []byte) *FetchCursor {
	return &FetchCursor{
		pool:     p,
		maxRange: *util.BytesPrefix(p.prefixKey(prefix)),
	}
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - return up to count elements from the cursor position and
// advance the cursor past them
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrDatabaseNotOpen
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == cursor.pool.dataAccess || nil == poolData.db {
		return nil, fault.ErrDatabaseNotOpen
	}

	iter := cursor.pool.dataAccess.Iterator(&cursor.maxRange)

	results := make([]Element, 0, count)
iterating:
	for iter.Next() {
		results = append(results, copyElement(iter.Key(), iter.Value()))
		if len(results) >= count {
			break iterating
		}
	}
	iter.Release()
	err := iter.Error()

	if n := len(results); n > 0 {
		// smallest key after the last one returned
		next := cursor.pool.prefixKey(results[n-1].Key)
		cursor.maxRange.Start = append(next, 0x00)
	}
	return results, err
}

// Map - run a function on all elements in the range, lowest key first
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	return cursor.walk(false, f)
}

// ReverseMap - run a function on all elements in the range, highest
// key first
func (cursor *FetchCursor) ReverseMap(f func(key []byte, value []byte) error) error {
	return cursor.walk(true, f)
}

func (cursor *FetchCursor) walk(reverse bool, f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.ErrDatabaseNotOpen
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == cursor.pool.dataAccess || nil == poolData.db {
		return fault.ErrDatabaseNotOpen
	}

	iter := cursor.pool.dataAccess.Iterator(&cursor.maxRange)

	move := iter.Next
	if reverse {
		move = iter.Prev
		if !iter.Last() {
			iter.Release()
			return iter.Error()
		}
	}

	var err error
	first := reverse
iterating:
	for first || move() {
		first = false
		e := copyElement(iter.Key(), iter.Value())
		err = f(e.Key, e.Value)
		if nil != err {
			break iterating
		}
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return err
}
