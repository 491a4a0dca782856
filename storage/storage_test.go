// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/treelab/fault"
	"github.com/bitmark-inc/treelab/storage"
)

func storeTestElements(t *testing.T) {
	for _, e := range testElements {
		err := storage.Pool.TestData.Put([]byte(e.key), []byte(e.value))
		require.NoError(t, err, "put: %s", e.key)
	}
}

func TestPutGet(t *testing.T) {
	setup(t)
	defer teardown()

	storeTestElements(t)

	p := storage.Pool.TestData
	assert.Equal(t, []byte("data-two"), p.Get([]byte("key-two")))
	assert.True(t, p.Has([]byte("key-two")))
	assert.Nil(t, p.Get([]byte("/nonexistent")))
	assert.False(t, p.Has([]byte("/nonexistent")))

	require.NoError(t, p.Delete([]byte("key-two")))
	assert.False(t, p.Has([]byte("key-two")))

	last, found := p.LastElement()
	require.True(t, found)
	assert.Equal(t, []byte("key-three"), last.Key, "highest remaining key")
}

func TestLastElementEmptyPool(t *testing.T) {
	setup(t)
	defer teardown()

	_, found := storage.Pool.Reports.LastElement()
	assert.False(t, found)
}

func TestFetchCursor(t *testing.T) {
	setup(t)
	defer teardown()

	storeTestElements(t)

	cursor := storage.Pool.TestData.NewFetchCursor()
	first, err := cursor.Fetch(2)
	require.NoError(t, err)
	assert.Equal(t, expectedElements[:2], first)

	rest, err := cursor.Fetch(10)
	require.NoError(t, err)
	assert.Equal(t, expectedElements[2:], rest)

	none, err := cursor.Fetch(10)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = cursor.Fetch(0)
	assert.ErrorIs(t, err, fault.ErrInvalidCount)

	seeked, err := storage.Pool.TestData.NewFetchCursor().Seek([]byte("key-t")).Fetch(5)
	require.NoError(t, err)
	assert.Equal(t, expectedElements[3:], seeked)
}

func TestMapAndReverseMap(t *testing.T) {
	setup(t)
	defer teardown()

	storeTestElements(t)

	forward := []string{}
	err := storage.Pool.TestData.NewFetchCursor().Map(func(key []byte, value []byte) error {
		forward = append(forward, string(key))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"key-five", "key-four", "key-one", "key-three", "key-two"}, forward)

	backward := []string{}
	err = storage.Pool.TestData.NewPrefixCursor([]byte("key-t")).ReverseMap(func(key []byte, value []byte) error {
		backward = append(backward, string(key))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"key-two", "key-three"}, backward)

	empty := 0
	err = storage.Pool.Reports.NewFetchCursor().ReverseMap(func(key []byte, value []byte) error {
		empty += 1
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, empty)
}

func TestTransaction(t *testing.T) {
	setup(t)
	defer teardown()

	trx, err := storage.NewDBTransaction()
	require.NoError(t, err)

	_, err = storage.NewDBTransaction()
	assert.ErrorIs(t, err, fault.ErrTransactionInUse, "second transaction")

	trx.Put(storage.Pool.TestData, []byte("a"), []byte("b"))
	trx.PutN(storage.Pool.TestData, []byte("n"), 42)
	assert.Nil(t, trx.Get(storage.Pool.TestData, []byte("a")), "not visible before commit")
	require.NoError(t, trx.Commit())

	n, ok := storage.Pool.TestData.GetN([]byte("n"))
	assert.True(t, ok)
	assert.Equal(t, uint64(42), n)
	assert.Equal(t, []byte("b"), storage.Pool.TestData.Get([]byte("a")))

	trx, err = storage.NewDBTransaction()
	require.NoError(t, err)
	trx.Delete(storage.Pool.TestData, []byte("a"))
	trx.Abort()
	assert.True(t, storage.Pool.TestData.Has([]byte("a")), "abort discards writes")
}

func TestReports(t *testing.T) {
	setup(t)
	defer teardown()

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	for i := 0; i < 3; i += 1 {
		err := storage.StoreReport("rotations", base.Add(time.Duration(i)*time.Minute), []byte{byte('a' + i)})
		require.NoError(t, err)
	}
	require.NoError(t, storage.StoreReport("compare", base, []byte("c")))
	require.NoError(t, storage.StoreReport("compare-x", base, []byte("x")))

	assert.Equal(t, uint64(3), storage.ReportCount("rotations"))
	assert.Equal(t, uint64(1), storage.ReportCount("compare"))
	assert.Equal(t, uint64(0), storage.ReportCount("weighted"))

	records, err := storage.Reports("rotations", 0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []byte("c"), records[0].Data, "newest first")
	assert.True(t, base.Add(2*time.Minute).Equal(records[0].Timestamp), "timestamp: %s", records[0].Timestamp)
	assert.Equal(t, "rotations", records[2].Kind)
	assert.Equal(t, []byte("a"), records[2].Data)

	records, err = storage.Reports("rotations", 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = storage.Reports("compare", 0)
	require.NoError(t, err)
	require.Len(t, records, 1, "kind prefix must not match longer kinds")
	assert.Equal(t, []byte("c"), records[0].Data)

	latest, err := storage.LatestReport("compare-x")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), latest.Data)

	_, err = storage.LatestReport("weighted")
	assert.ErrorIs(t, err, fault.ErrNotFoundReport)

	assert.ErrorIs(t, storage.StoreReport("", base, nil), fault.ErrInvalidFormat)
}

func TestClosedDatabase(t *testing.T) {
	setup(t)
	assert.True(t, storage.IsOpen())
	assert.ErrorIs(t, storage.Initialise(databasePath(), storage.ReadWrite), fault.ErrAlreadyInitialised)
	teardown()

	assert.False(t, storage.IsOpen())
	_, err := storage.Reports("rotations", 0)
	assert.ErrorIs(t, err, fault.ErrDatabaseNotOpen)
	_, err = storage.NewDBTransaction()
	assert.ErrorIs(t, err, fault.ErrDatabaseNotOpen)
	assert.Equal(t, uint64(0), storage.ReportCount("rotations"))
}

func TestReopenReadOnly(t *testing.T) {
	setup(t)
	defer teardown()

	require.NoError(t, storage.StoreReport("avl", time.Unix(100, 0), []byte("r")))
	storage.Finalise()

	require.NoError(t, storage.Initialise(databasePath(), storage.ReadOnly))
	latest, err := storage.LatestReport("avl")
	require.NoError(t, err)
	assert.Equal(t, []byte("r"), latest.Data)
	assert.Equal(t, int64(100), latest.Timestamp.Unix())
}
