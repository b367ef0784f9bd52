// Package rpc speaks the gateway's JSON envelope protocol: it posts request
// bodies and turns the integer Result codes of responses into typed outcomes.
package rpc

import (
	"encoding/json"
	"fmt"
	"time"

	"circular-enterprise/apierr"
	"circular-enterprise/models"
	"circular-enterprise/util/log"

	eParser "github.com/go-errors/errors"
	"github.com/valyala/fasthttp"
)

var (
	client = &fasthttp.Client{
		MaxConnWaitTimeout: 15 * time.Second,
		MaxConnsPerHost:    20,
	}

	requestTimeout = 30 * time.Second
)

// SetTimeout overrides the per-request timeout. Zero restores the default.
func SetTimeout(d time.Duration) {
	if d <= 0 {
		d = 30 * time.Second
	}
	requestTimeout = d
}

// PostJSON posts body as JSON to url and decodes the response envelope.
func PostJSON(url string, body interface{}) (*models.Envelope, error) {
	requestBody, err := json.Marshal(body)
	if err != nil {
		return nil, apierr.Wrap(apierr.Validation, err, "failed to encode request body")
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod("POST")
	req.Header.SetContentType("application/json")
	req.SetRequestURI(url)
	req.SetBody(requestBody)

	if err := client.DoTimeout(req, resp, requestTimeout); err != nil {
		log.Debugf("POST %s failed: %v", url, err)
		return nil, apierr.Wrap(apierr.Network, err, "network request failed")
	}

	if code := resp.StatusCode(); code != fasthttp.StatusOK {
		return nil, apierr.Newf(apierr.Network, "network request failed with status: %d", code)
	}

	bodyBytes := resp.Body()

	var env models.Envelope
	if err := json.Unmarshal(bodyBytes, &env); err != nil {
		log.Debug(eParser.Wrap(err, 0).ErrorStack())
		log.Debugf("Request body: %v", string(requestBody))
		log.Debugf("Response: %v", string(bodyBytes))
		return nil, apierr.Wrap(apierr.Protocol, err, "failed to decode response JSON")
	}

	return &env, nil
}

// GetJSON fetches url and decodes the JSON response into target.
func GetJSON(url string, target interface{}) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod("GET")
	req.SetRequestURI(url)

	if err := client.DoTimeout(req, resp, requestTimeout); err != nil {
		log.Debugf("GET %s failed: %v", url, err)
		return apierr.Wrap(apierr.Network, err, "network request failed")
	}

	if code := resp.StatusCode(); code != fasthttp.StatusOK {
		return apierr.Newf(apierr.Network, "network request failed with status: %d", code)
	}

	if err := json.Unmarshal(resp.Body(), target); err != nil {
		return apierr.Wrap(apierr.Protocol, err, "failed to decode response JSON")
	}

	return nil
}

// interpretResult maps the envelope's Result code to a typed outcome. The
// context string prefixes generic rejection reasons; the well-known codes
// carry fixed reasons of their own.
func interpretResult(env *models.Envelope, context string) error {
	if env.Result == nil {
		return apierr.New(apierr.Protocol, "failed to get result from response")
	}

	switch *env.Result {
	case models.ResultOK:
		return nil
	case models.ResultInvalidBlockchain:
		return apierr.New(apierr.Rejection, "Rejected: Invalid Blockchain")
	case models.ResultInsufficientBalance:
		return apierr.New(apierr.Rejection, "Rejected: Insufficient balance")
	}

	if reason, ok := env.ResponseString(); ok {
		return apierr.New(apierr.Rejection, fmt.Sprintf("%s: %s", context, reason))
	}
	return apierr.New(apierr.Rejection, context+": unknown error response")
}
