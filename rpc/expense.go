// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/propertyd/expense"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/identity"
	"github.com/bitmark-inc/propertyd/mode"
	"github.com/bitmark-inc/propertyd/records"
)

const (
	rateLimitExpense = 200
	rateBurstExpense = 100
)

// Expense - expense ledger RPC
type Expense struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

func newExpense(log *logger.L) *Expense {
	return &Expense{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitExpense, rateBurstExpense),
	}
}

// Expense.Record
// --------------

// ExpenseRecordArguments - the caller is stored as the payer
type ExpenseRecordArguments struct {
	Caller      identity.Identity `json:"caller"`
	PropertyId  uint64            `json:"propertyId"`
	ExpenseId   uint64            `json:"expenseId"`
	Description string            `json:"description"`
	Amount      uint64            `json:"amount"`
	Category    string            `json:"category"`
}

// ExpenseRecordReply - the stored expense
type ExpenseRecordReply struct {
	Record records.ExpenseRecord `json:"record"`
}

// Record - append a new expense to a property's ledger
func (t *Expense) Record(arguments *ExpenseRecordArguments, reply *ExpenseRecordReply) error {
	if err := rateLimit(t.Limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}

	t.Log.Infof("Expense.Record: %+v", arguments)

	err := expense.Record(
		arguments.Caller,
		arguments.PropertyId,
		arguments.ExpenseId,
		arguments.Description,
		arguments.Amount,
		arguments.Category,
	)
	if nil != err {
		return err
	}

	record, err := expense.Get(arguments.PropertyId, arguments.ExpenseId)
	if nil != err {
		return err
	}
	reply.Record = *record
	return nil
}

// Expense.Distribute
// ------------------

// ExpenseDistributeArguments - select one expense
type ExpenseDistributeArguments struct {
	PropertyId uint64 `json:"propertyId"`
	ExpenseId  uint64 `json:"expenseId"`
}

// ExpenseDistributeReply - state after the flag change
type ExpenseDistributeReply struct {
	Distributed bool `json:"distributed"`
}

// Distribute - open an expense for allocation
func (t *Expense) Distribute(arguments *ExpenseDistributeArguments, reply *ExpenseDistributeReply) error {
	if err := rateLimit(t.Limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}

	t.Log.Infof("Expense.Distribute: %+v", arguments)

	if err := expense.Distribute(arguments.PropertyId, arguments.ExpenseId); nil != err {
		return err
	}

	reply.Distributed = true
	return nil
}

// Expense.Get
// -----------

// ExpenseGetArguments - select one expense
type ExpenseGetArguments struct {
	PropertyId uint64 `json:"propertyId"`
	ExpenseId  uint64 `json:"expenseId"`
}

// ExpenseGetReply - the stored expense
type ExpenseGetReply struct {
	Record records.ExpenseRecord `json:"record"`
}

// Get - fetch one expense record
func (t *Expense) Get(arguments *ExpenseGetArguments, reply *ExpenseGetReply) error {
	if err := rateLimit(t.Limiter); nil != err {
		return err
	}
	if !mode.Is(mode.Normal) {
		return fault.ErrNotAvailableDuringStartup
	}

	record, err := expense.Get(arguments.PropertyId, arguments.ExpenseId)
	if nil != err {
		return err
	}
	reply.Record = *record
	return nil
}
