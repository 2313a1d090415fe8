// Package api - API-Methoden des Clients.

package api

import (
	"context"
	"net/http"

	"github.com/7blacky7/godaal/daal"
)

// Heartbeat prueft ob der Server laeuft.
func (c *Client) Heartbeat(ctx context.Context) error {
	return c.do(ctx, http.MethodHead, "/", nil, nil)
}

// Version liefert die Server-Version und das geladene Backend.
func (c *Client) Version(ctx context.Context) (*VersionResponse, error) {
	var v VersionResponse
	if err := c.do(ctx, http.MethodGet, "/api/version", nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Families listet alle Identifier-Familien.
func (c *Client) Families(ctx context.Context) (*FamiliesResponse, error) {
	var resp FamiliesResponse
	if err := c.do(ctx, http.MethodGet, "/api/families", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Family liefert eine einzelne Familie, z.B. "neuralnetworks/layers.InputLayout".
func (c *Client) Family(ctx context.Context, name string) (*daal.Family, error) {
	var f daal.Family
	if err := c.do(ctx, http.MethodGet, "/api/family/"+name, nil, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Kinds listet alle konstruierbaren Kinds.
func (c *Client) Kinds(ctx context.Context) (*KindsResponse, error) {
	var resp KindsResponse
	if err := c.do(ctx, http.MethodGet, "/api/kinds", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Probe konstruiert die angefragten Kinds auf dem Server.
func (c *Client) Probe(ctx context.Context, req *ProbeRequest) (*ProbeResponse, error) {
	var resp ProbeResponse
	if err := c.do(ctx, http.MethodPost, "/api/probe", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
