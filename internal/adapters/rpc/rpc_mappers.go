package rpc

import (
	"encoding/json"

	"near_account_lookup/internal/core/domain"
)

// mapViewAccountToDomain converts the RPC DTO for an account to the domain model.
func mapViewAccountToDomain(result *ViewAccountResult) domain.AccountState {
	return domain.NewAccountState(result.Amount, result.StorageUsage)
}

// mapRPCErrorToDomain converts a raw JSON-RPC error member into an application-kind RPCError.
func mapRPCErrorToDomain(method string, raw json.RawMessage) *domain.RPCError {
	rpcErr := &domain.RPCError{Kind: domain.RPCErrorApplication, Method: method}

	var e Error
	if err := json.Unmarshal(raw, &e); err != nil {
		rpcErr.Message = truncateBody(string(raw), maxErrorMessage)
		return rpcErr
	}

	rpcErr.Code = e.Code
	switch {
	case e.Cause != nil && e.Cause.Name != "":
		rpcErr.Message = e.Cause.Name
	case e.Message != "":
		rpcErr.Message = e.Message
	default:
		rpcErr.Message = e.Name
	}
	return rpcErr
}

// isNull reports whether a raw JSON member is absent or null.
func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// truncateBody truncates a string to maxLen characters.
func truncateBody(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
