package rpc

import (
	"circular-enterprise/models"
)

// AddTransaction submits a signed transaction. A nil error means the gateway
// accepted the locally computed transaction ID.
func AddTransaction(nagURL, node string, tx *models.Transaction) error {
	url := nagURL + "Circular_AddTransaction_" + node

	env, err := PostJSON(url, tx)
	if err != nil {
		return err
	}

	return interpretResult(env, "certificate submission failed")
}

// GetTransactionByID looks a transaction up over the given block range.
// The envelope is returned uninterpreted: a lookup for a transaction that is
// not found yet is not a failure, the caller inspects Result and Status.
func GetTransactionByID(nagURL, node string, query *models.TransactionQuery) (*models.Envelope, error) {
	url := nagURL + "Circular_GetTransactionbyID_" + node

	return PostJSON(url, query)
}
