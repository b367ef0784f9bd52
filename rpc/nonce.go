package rpc

import (
	"circular-enterprise/apierr"
	"circular-enterprise/models"
)

// GetWalletNonce queries the account's current nonce from the gateway.
// The returned value is the remote nonce as reported, the caller derives
// the next usable one.
func GetWalletNonce(nagURL, node string, req *models.NonceRequest) (int64, error) {
	url := nagURL + "Circular_GetWalletNonce_" + node

	env, err := PostJSON(url, req)
	if err != nil {
		return 0, err
	}

	if err := interpretResult(env, "failed to update account"); err != nil {
		return 0, err
	}

	var nonceResp models.NonceResponse
	if err := env.ResponseObject(&nonceResp); err != nil || nonceResp.Nonce == nil {
		return 0, apierr.New(apierr.Protocol, "failed to decode nonce response")
	}

	return *nonceResp.Nonce, nil
}
