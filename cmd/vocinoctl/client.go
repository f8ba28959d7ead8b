package main

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

func newClient() *resty.Client {
	return resty.New().
		SetBaseURL(apiFlag).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json")
}

// checkResp turns non-2xx responses into errors carrying the body.
func checkResp(resp *resty.Response, err error) (*resty.Response, error) {
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	return resp, nil
}
