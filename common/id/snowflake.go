package id

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// ErrInvalid is returned by Parse for anything that is not a positive snowflake.
var ErrInvalid = errors.New("invalid id")

// Init initializes the Snowflake node with the given node ID.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New generates a new time-ordered int64 ID. Init must have been called.
func New() int64 {
	return node.Generate().Int64()
}

// Parse reads an ID from a path parameter or JSON string.
func Parse(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	return v, nil
}

// Format is the inverse of Parse. IDs cross the API boundary as strings so
// JavaScript clients do not lose precision.
func Format(v int64) string {
	return snowflake.ID(v).String()
}
