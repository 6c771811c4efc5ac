package ids

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// TransactionIDs hands out time ordered ids for payments recorded without a
// provider or caller supplied transaction id.
type TransactionIDs struct {
	node *snowflake.Node
}

func NewTransactionIDs(nodeID int64) (*TransactionIDs, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("snowflake node %d: %w", nodeID, err)
	}
	return &TransactionIDs{node: node}, nil
}

// Next returns ids like "TX-1541815603606036480".
func (g *TransactionIDs) Next() string {
	return "TX-" + g.node.Generate().String()
}
