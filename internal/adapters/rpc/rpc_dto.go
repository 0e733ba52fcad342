package rpc

import (
	"encoding/json"
)

// JSONRPCRequest represents the basic structure of a JSON-RPC request. NEAR takes named params.
type JSONRPCRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

// ErrorCause is the structured cause NEAR attaches to handler errors, e.g. UNKNOWN_ACCOUNT.
type ErrorCause struct {
	Name string          `json:"name"`
	Info json.RawMessage `json:"info,omitempty"`
}

// Error represents the error object in a JSON-RPC response.
type Error struct {
	Name    string          `json:"name,omitempty"`
	Cause   *ErrorCause     `json:"cause,omitempty"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// JSONRPCResponse represents the basic structure of a JSON-RPC response.
// Error is kept raw because any non-null error member fails the call, whatever its shape.
type JSONRPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   json.RawMessage `json:"error,omitempty"`
}

// ViewAccountParams are the params of a query call with request_type view_account.
type ViewAccountParams struct {
	RequestType string `json:"request_type"`
	Finality    string `json:"finality"`
	AccountID   string `json:"account_id"`
}

// ViewAccountResult represents the DTO for the view_account result.
// Older nodes report query failures inside the result as an "error" string.
type ViewAccountResult struct {
	Amount        string `json:"amount"`
	Locked        string `json:"locked"`
	CodeHash      string `json:"code_hash"`
	StorageUsage  uint64 `json:"storage_usage"`
	StoragePaidAt uint64 `json:"storage_paid_at"`
	BlockHeight   uint64 `json:"block_height"`
	BlockHash     string `json:"block_hash"`
	Error         string `json:"error,omitempty"`
}
