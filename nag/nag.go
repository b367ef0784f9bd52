// Package nag resolves the Network Access Gateway URL for a network
// identifier through the discovery service.
package nag

import (
	"sync"

	"circular-enterprise/apierr"
	"circular-enterprise/config"
	"circular-enterprise/models"
	"circular-enterprise/rpc"
)

var (
	urlMu      sync.Mutex
	networkURL = config.DefaultNetworkURL
)

// NetworkURL returns the discovery base URL currently in effect.
func NetworkURL() string {
	urlMu.Lock()
	defer urlMu.Unlock()
	return networkURL
}

// SetNetworkURL overrides the discovery base URL process-wide. An empty
// value restores the default.
func SetNetworkURL(url string) {
	urlMu.Lock()
	defer urlMu.Unlock()

	if url == "" {
		networkURL = config.DefaultNetworkURL
		return
	}
	networkURL = url
}

// GetNAG fetches the gateway URL serving the given network identifier.
func GetNAG(network string) (string, error) {
	if network == "" {
		return "", apierr.New(apierr.Validation, "network identifier cannot be empty")
	}

	requestURL := NetworkURL() + network

	var resp models.NAGResponse
	if err := rpc.GetJSON(requestURL, &resp); err != nil {
		return "", apierr.WithContext(err, "failed to fetch NAG URL")
	}

	if resp.Status != "success" || resp.URL == "" {
		return "", apierr.Newf(apierr.Protocol, "failed to get valid NAG URL from response: %s", resp.Message)
	}

	return resp.URL, nil
}
