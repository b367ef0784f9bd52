// Package account drives the transaction lifecycle of one ledger account:
// nonce management, certificate submission and outcome tracking.
//
// An Account is exclusively owned by its caller. Mutating operations
// (UpdateAccount, SubmitCertificate) must not run concurrently against the
// same instance; read-only queries may interleave. Network-bound methods
// block, run them in a goroutine when concurrency is needed.
package account

import (
	"strconv"

	"circular-enterprise/apierr"
	"circular-enterprise/config"
	"circular-enterprise/models"
	"circular-enterprise/nag"
	"circular-enterprise/rpc"
	"circular-enterprise/signer"
	"circular-enterprise/util/hexutil"
	"circular-enterprise/util/log"
	"circular-enterprise/util/timeutil"
)

// Account is one signer's session with the ledger.
type Account struct {
	Address string

	// PublicKey is caller-populated bookkeeping. No operation reads it;
	// signing takes the private key directly and the gateway identifies
	// the signer by Address.
	PublicKey string

	CodeVersion string

	// NAGURL and NetworkNode select the gateway endpoint; both are set by
	// SetNetwork and cleared by Close.
	NAGURL      string
	NetworkNode string

	Blockchain string
	LatestTxID string

	// Nonce is server-authoritative: refreshed by UpdateAccount, advanced
	// locally by exactly one on every successful submission.
	Nonce int64

	// intervalSec is the per-account outcome polling interval. Zero means
	// the configured default.
	intervalSec int

	lastErr error
}

// New returns a closed account preconfigured with the library defaults.
func New() *Account {
	return &Account{
		CodeVersion: config.LibVersion,
		NAGURL:      config.DefaultNAG,
		Blockchain:  config.DefaultChain,
	}
}

// Open binds the account to an address. Fails on an empty address.
func (a *Account) Open(address string) error {
	if address == "" {
		return a.fail(apierr.New(apierr.Validation, "invalid address format"))
	}

	a.Address = address
	a.lastErr = nil
	return nil
}

// Close returns the account to a logically empty state. The last error is
// deliberately kept: it describes the most recent operation regardless of
// session lifecycle.
func (a *Account) Close() {
	a.Address = ""
	a.PublicKey = ""
	a.NAGURL = ""
	a.NetworkNode = ""
	a.Blockchain = ""
	a.LatestTxID = ""
	a.Nonce = 0
	a.intervalSec = 0
}

// SetBlockchain overrides the target chain identifier.
func (a *Account) SetBlockchain(blockchain string) {
	a.Blockchain = blockchain
}

// SetNetworkNode overrides the network node suffix without discovery.
func (a *Account) SetNetworkNode(node string) {
	a.NetworkNode = node
}

// SetInterval sets the account's default outcome polling interval in
// seconds. Non-positive values restore the configured default.
func (a *Account) SetInterval(seconds int) {
	if seconds <= 0 {
		seconds = 0
	}
	a.intervalSec = seconds
}

// LastError returns the diagnostic of the most recent operation, nil after
// a success. It is overwritten, never accumulated.
func (a *Account) LastError() error {
	return a.lastErr
}

// SetNetwork resolves the gateway URL for the given network identifier.
// Prior network configuration is kept untouched on failure.
func (a *Account) SetNetwork(network string) error {
	url, err := nag.GetNAG(network)
	if err != nil {
		return a.fail(err)
	}

	a.NAGURL = url
	a.NetworkNode = network
	a.lastErr = nil

	log.Debugf("network %s resolved to %s", network, url)
	return nil
}

// UpdateAccount refreshes the nonce from the gateway. On success the local
// nonce becomes the remote nonce plus one; on failure it is left unchanged.
func (a *Account) UpdateAccount() error {
	if a.Address == "" {
		return a.fail(apierr.New(apierr.State, "account is not open"))
	}

	req := &models.NonceRequest{
		Address:    hexutil.Fix(a.Address),
		Version:    a.CodeVersion,
		Blockchain: hexutil.Fix(a.Blockchain),
	}

	remote, err := rpc.GetWalletNonce(a.NAGURL, a.NetworkNode, req)
	if err != nil {
		return a.fail(err)
	}

	a.Nonce = remote + 1
	a.lastErr = nil
	return nil
}

// SignData signs a message with the caller-supplied private key. The account
// must be open; the key never touches account state.
func (a *Account) SignData(message, privateKeyHex string) (string, error) {
	if a.Address == "" {
		return "", a.fail(apierr.New(apierr.State, "account is not open"))
	}

	sig, err := signer.Sign(message, privateKeyHex)
	if err != nil {
		return "", a.fail(err)
	}

	a.lastErr = nil
	return sig, nil
}

// SubmitCertificate builds, signs and submits a certificate transaction.
// On success the latest transaction ID is recorded and the nonce advances by
// exactly one; on any failure both are left unchanged.
func (a *Account) SubmitCertificate(data, privateKeyHex string) error {
	if a.Address == "" {
		return a.fail(apierr.New(apierr.State, "account is not open"))
	}

	tx, err := a.buildTransaction(data, privateKeyHex, timeutil.Timestamp())
	if err != nil {
		return a.fail(apierr.Wrap(apierr.Signing, err, "failed to sign data"))
	}

	if err := rpc.AddTransaction(a.NAGURL, a.NetworkNode, tx); err != nil {
		return a.fail(err)
	}

	a.LatestTxID = tx.ID
	a.Nonce++
	a.lastErr = nil

	log.Debugf("certificate submitted, tx=%s nonce=%d", tx.ID, a.Nonce)
	return nil
}

// GetTransaction looks up a transaction in the exact block given by blockID.
func (a *Account) GetTransaction(blockID, txID string) (*models.Envelope, error) {
	if blockID == "" {
		return nil, a.fail(apierr.New(apierr.Validation, "blockID cannot be empty"))
	}

	block, err := strconv.ParseInt(blockID, 10, 64)
	if err != nil {
		return nil, a.fail(apierr.New(apierr.Validation, "invalid blockID"))
	}

	env, err := a.getTransactionByID(txID, block, block)
	if err != nil {
		return nil, a.fail(apierr.WithContext(err, "failed to get transaction by ID"))
	}

	a.lastErr = nil
	return env, nil
}

// getTransactionByID queries the gateway over the [start, end] block range.
func (a *Account) getTransactionByID(txID string, start, end int64) (*models.Envelope, error) {
	if a.NAGURL == "" {
		return nil, apierr.New(apierr.State, "network is not set")
	}

	query := &models.TransactionQuery{
		Blockchain: hexutil.Fix(a.Blockchain),
		ID:         hexutil.Fix(txID),
		Start:      strconv.FormatInt(start, 10),
		End:        strconv.FormatInt(end, 10),
		Version:    a.CodeVersion,
	}

	return rpc.GetTransactionByID(a.NAGURL, a.NetworkNode, query)
}

// fail records err as the account's last error and returns it.
func (a *Account) fail(err error) error {
	a.lastErr = err
	return err
}
