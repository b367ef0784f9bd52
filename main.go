package main

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"circular-enterprise/account"
	"circular-enterprise/config"
	"circular-enterprise/rpc"
	"circular-enterprise/util/log"
)

var (
	data     string
	network  string
	timeout  int
	interval int
)

func init() {
	flag.StringVar(&data, "data", "", "certificate payload to notarize")
	flag.StringVar(&network, "network", "", "network identifier, overrides config")
	flag.IntVar(&timeout, "timeout", 60, "outcome polling timeout in seconds")
	flag.IntVar(&interval, "interval", 5, "outcome polling interval in seconds")
}

func main() {
	flag.Parse()
	config.Load(true)
	log.Init(config.DebugMode())
	log.SetPrefix(config.GetLabel())
	rpc.SetTimeout(config.GetHTTPTimeout())

	if data == "" {
		log.Fatal("-data is required")
	}

	address := os.Getenv("CIRCULAR_ADDRESS")
	privateKey := os.Getenv("CIRCULAR_PRIVATE_KEY")
	if address == "" || privateKey == "" {
		log.Fatal("CIRCULAR_ADDRESS and CIRCULAR_PRIVATE_KEY must be set in environment or .env")
	}

	if network == "" {
		network = config.GetNetwork()
	}

	acc := account.New()
	acc.SetBlockchain(config.GetBlockchain())

	if err := acc.Open(address); err != nil {
		log.Fatal(err)
	}

	if err := acc.SetNetwork(network); err != nil {
		log.Fatal(err)
	}
	log.Infof("connected to gateway %s", acc.NAGURL)

	if err := acc.UpdateAccount(); err != nil {
		log.Fatal(err)
	}
	log.Infof("account nonce updated, nonce=%d", acc.Nonce)

	if err := acc.SubmitCertificate(data, privateKey); err != nil {
		log.Fatal(err)
	}
	log.Infof("certificate submitted, tx=%s", acc.LatestTxID)

	outcome, err := acc.GetTransactionOutcome(acc.LatestTxID,
		time.Duration(timeout)*time.Second, time.Duration(interval)*time.Second)
	if err != nil {
		log.Fatal(err)
	}

	pretty, _ := json.MarshalIndent(outcome, "", "  ")
	log.Infof("transaction outcome:\n%s", string(pretty))

	acc.Close()
}
