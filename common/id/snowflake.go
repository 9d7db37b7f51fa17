package id

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init initializes the Snowflake node with the given node ID.
// The server and the worker must use different node IDs.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New generates a new globally unique int64 ID using the Snowflake algorithm.
func New() int64 {
	return node.Generate().Int64()
}

// Format renders an ID the way it is exposed over JSON.
func Format(v int64) string {
	return strconv.FormatInt(v, 10)
}

// FormatPtr is Format for optional references.
func FormatPtr(v *int64) *string {
	if v == nil {
		return nil
	}
	s := Format(*v)
	return &s
}

// Parse reads an ID from a path parameter or request field.
func Parse(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return v, nil
}
