package model

import (
	"encoding/json"
)

// SwapRecord is the normalized representation of an encoded or submitted
// swap for storage.
type SwapRecord struct {
	ChainID     uint64 `json:"chain_id"`
	TxHash      string `json:"tx_hash,omitempty"`
	Router      string `json:"router"`
	Sender      string `json:"sender,omitempty"`
	Recipient   string `json:"recipient"`
	TokenIn     string `json:"token_in"`
	TokenOut    string `json:"token_out"`
	AmountIn    string `json:"amount_in"`
	MinOut      string `json:"min_out"`
	QuotedOut   string `json:"quoted_out,omitempty"`
	Commands    string `json:"commands"`
	Value       string `json:"value"`
	Deadline    uint64 `json:"deadline"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submitted_at"`
}

// Swap record statuses.
const (
	StatusEncoded   = "encoded"
	StatusSubmitted = "submitted"
	StatusFailed    = "failed"
)

// MarshalJSON ensures SwapRecord is encoded with stable field names.
func (sr SwapRecord) MarshalJSON() ([]byte, error) {
	type Alias SwapRecord
	return json.Marshal(Alias(sr))
}

// UnmarshalJSON decodes a SwapRecord from JSON.
func (sr *SwapRecord) UnmarshalJSON(data []byte) error {
	type Alias SwapRecord
	var a Alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*sr = SwapRecord(a)
	return nil
}
