// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"encoding/binary"
	"errors"
	"time"

	"github.com/bitmark-inc/treelab/fault"
)

// Record - one archived report
type Record struct {
	Kind      string
	Timestamp time.Time
	Data      []byte
}

// to stop a reverse walk early
var errEnough = errors.New("enough")

// report key: kind ++ 0x00 ++ big endian Unix nanoseconds
func reportKey(kind string, timestamp time.Time) []byte {
	key := make([]byte, 0, len(kind)+9)
	key = append(key, kind...)
	key = append(key, 0x00)
	return binary.BigEndian.AppendUint64(key, uint64(timestamp.UnixNano()))
}

func splitReportKey(key []byte) (string, time.Time, bool) {
	n := bytes.IndexByte(key, 0x00)
	if n < 0 || len(key) != n+9 {
		return "", time.Time{}, false
	}
	ns := int64(binary.BigEndian.Uint64(key[n+1:]))
	return string(key[:n]), time.Unix(0, ns).UTC(), true
}

// StoreReport - archive encoded report data under its kind and
// timestamp and bump the count for the kind in one transaction
func StoreReport(kind string, timestamp time.Time, data []byte) error {
	if "" == kind || bytes.IndexByte([]byte(kind), 0x00) >= 0 {
		return fault.ErrInvalidFormat
	}

	trx, err := NewDBTransaction()
	if nil != err {
		return err
	}

	count, _ := trx.GetN(Pool.ReportCount, []byte(kind))
	trx.Put(Pool.Reports, reportKey(kind, timestamp), data)
	trx.PutN(Pool.ReportCount, []byte(kind), count+1)

	return trx.Commit()
}

// ReportCount - number of archived reports of a kind
func ReportCount(kind string) uint64 {
	if nil == Pool.ReportCount {
		return 0
	}
	count, _ := Pool.ReportCount.GetN([]byte(kind))
	return count
}

// Reports - up to limit reports of a kind, newest first; zero limit
// for all of them
func Reports(kind string, limit int) ([]Record, error) {
	if nil == Pool.Reports {
		return nil, fault.ErrDatabaseNotOpen
	}

	prefix := append([]byte(kind), 0x00)
	records := []Record{}
	err := Pool.Reports.NewPrefixCursor(prefix).ReverseMap(func(key []byte, value []byte) error {
		k, timestamp, ok := splitReportKey(key)
		if !ok {
			return fault.ErrNotFoundReport
		}
		records = append(records, Record{
			Kind:      k,
			Timestamp: timestamp,
			Data:      value,
		})
		if limit > 0 && len(records) >= limit {
			return errEnough
		}
		return nil
	})
	if nil != err && errEnough != err {
		return nil, err
	}
	return records, nil
}

// LatestReport - the newest report of a kind
func LatestReport(kind string) (Record, error) {
	records, err := Reports(kind, 1)
	if nil != err {
		return Record{}, err
	}
	if 0 == len(records) {
		return Record{}, fault.ErrNotFoundReport
	}
	return records[0], nil
}
