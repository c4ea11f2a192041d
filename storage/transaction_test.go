// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/propertyd/storage/mocks"
)

func setupTestTransaction(t *testing.T) (Transaction, *mocks.MockDataAccess, *gomock.Controller) {
	ctl := gomock.NewController(t)
	mock := mocks.NewMockDataAccess(ctl)
	trx := newTransaction([]DataAccess{mock})
	return trx, mock, ctl
}

func TestTransactionCommitFlushesEachAccess(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Begin().Return(nil).Times(1)
	mock.EXPECT().Commit().Return(nil).Times(1)

	trx.Begin()
	err := trx.Commit()
	assert.Equal(t, nil, err, "commit should succeed")
}

func TestTransactionAbortDropsEachAccess(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Begin().Return(nil).Times(1)
	mock.EXPECT().Abort().Times(1)

	trx.Begin()
	trx.Abort()
}

// the unexported staged methods cannot use a general gomock, so a
// hand-rolled Handle mock records which were called
type testHandleMock struct {
	Handle
	PutCalled    bool
	PutNCalled   bool
	RemoveCalled bool
	GetCalled    bool
}

func (m *testHandleMock) put(key []byte, value []byte)  { m.PutCalled = true }
func (m *testHandleMock) putN(key []byte, value uint64) { m.PutNCalled = true }
func (m *testHandleMock) remove(key []byte)             { m.RemoveCalled = true }
func (m *testHandleMock) getN(key []byte) (uint64, bool) {
	m.GetCalled = true
	return uint64(0), true
}

func TestTransactionDelegatesToHandle(t *testing.T) {
	trx, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Begin().Return(nil).Times(1)
	mock.EXPECT().Commit().Return(nil).Times(1)

	myMock := &testHandleMock{}

	trx.Begin()
	trx.Put(myMock, []byte{}, []byte{})
	trx.PutN(myMock, []byte{}, uint64(1))
	trx.Delete(myMock, []byte{})
	_, _ = trx.GetN(myMock, []byte{})
	_ = trx.Commit()

	assert.True(t, myMock.PutCalled, "staged put not called")
	assert.True(t, myMock.PutNCalled, "staged putN not called")
	assert.True(t, myMock.RemoveCalled, "staged remove not called")
	assert.True(t, myMock.GetCalled, "staged getN not called")
}
