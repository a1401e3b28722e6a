package uid

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

var _ UIDGenerator = (*snowflakeGenerator)(nil)

type snowflakeGenerator struct {
	node *snowflake.Node
}

// NewSnowflake creates a Snowflake-based UIDGenerator. IDs are rendered in
// base58 so they stay short in URLs and log lines.
func NewSnowflake(nodeID int64) (UIDGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("uid: failed to create snowflake node %d: %w", nodeID, err)
	}
	return &snowflakeGenerator{node: node}, nil
}

// Generate never fails; snowflake.Node serializes callers itself.
func (g *snowflakeGenerator) Generate(context.Context) (string, error) {
	return g.node.Generate().Base58(), nil
}
