// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/propertyd/identity"
	"github.com/bitmark-inc/propertyd/rpc"
)

// RecordExpense - append a new expense to a property's ledger
func (c *Client) RecordExpense(caller identity.Identity, propertyId uint64, expenseId uint64, description string, amount uint64, category string) (*rpc.ExpenseRecordReply, error) {
	arguments := rpc.ExpenseRecordArguments{
		Caller:      caller,
		PropertyId:  propertyId,
		ExpenseId:   expenseId,
		Description: description,
		Amount:      amount,
		Category:    category,
	}

	var reply rpc.ExpenseRecordReply
	err := c.call("Expense.Record", &arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// DistributeExpense - open an expense for allocation
func (c *Client) DistributeExpense(propertyId uint64, expenseId uint64) (*rpc.ExpenseDistributeReply, error) {
	arguments := rpc.ExpenseDistributeArguments{
		PropertyId: propertyId,
		ExpenseId:  expenseId,
	}

	var reply rpc.ExpenseDistributeReply
	err := c.call("Expense.Distribute", &arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetExpense - fetch one expense record
func (c *Client) GetExpense(propertyId uint64, expenseId uint64) (*rpc.ExpenseGetReply, error) {
	arguments := rpc.ExpenseGetArguments{
		PropertyId: propertyId,
		ExpenseId:  expenseId,
	}

	var reply rpc.ExpenseGetReply
	err := c.call("Expense.Get", &arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
