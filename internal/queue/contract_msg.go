package queue

import "fmt"

// ContractMessage is the contract mutation event written to Kafka.
type ContractMessage struct {
	EventID    string `json:"event_id"`
	Action     string `json:"action"` // created / deleted
	ContractID string `json:"contract_id"`
	VendorID   string `json:"vendor_id"`
	Price      int64  `json:"price"` // tiyin
}

// Validate does minimal field checks so the consumer never processes a
// dirty message.
func (m ContractMessage) Validate() error {
	if m.EventID == "" {
		return fmt.Errorf("event_id is required")
	}
	if m.Action != "created" && m.Action != "deleted" {
		return fmt.Errorf("unknown action %q", m.Action)
	}
	if m.ContractID == "" {
		return fmt.Errorf("contract_id is required")
	}
	return nil
}
