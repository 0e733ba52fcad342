package activity

import (
	"encoding/json"

	"near_account_lookup/internal/core/domain"
)

// txnsResponse is the body of GET /v1/account/{id}/txns. Txns is kept raw so
// that a missing or non-array member reads as "no transactions".
type txnsResponse struct {
	Txns json.RawMessage `json:"txns"`
}

// TxnDTO is one transaction as listed by the indexer.
type TxnDTO struct {
	TransactionHash string           `json:"transaction_hash,omitempty"`
	Method          string           `json:"method,omitempty"`
	ActionKind      string           `json:"action_kind,omitempty"`
	BlockTimestamp  domain.Timestamp `json:"block_timestamp"`
}

func mapTxnToDomain(tx TxnDTO) domain.ActivityRecord {
	return domain.NewActivityRecord(tx.Method, tx.ActionKind, tx.BlockTimestamp)
}

func mapTxnsToDomain(txns []TxnDTO) []domain.ActivityRecord {
	records := make([]domain.ActivityRecord, 0, len(txns))
	for _, tx := range txns {
		records = append(records, mapTxnToDomain(tx))
	}
	return domain.CapActivity(records)
}
