package id

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init initializes the Snowflake node with the given node ID.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New generates a new globally unique int64 ID using the Snowflake algorithm.
// IDs are time-ordered and unique across distributed instances.
func New() int64 {
	return node.Generate().Int64()
}

const referenceAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewReference builds a submission reference: "NX-" followed by the base36
// form of a snowflake ID (uppercase, time-ordered) and a 4-character random
// suffix. It is a cosmetic acknowledgment token, never used as a lookup key,
// so practical collision improbability is all that is required.
func NewReference() string {
	var sb strings.Builder
	sb.WriteString("NX-")
	sb.WriteString(strings.ToUpper(strconv.FormatInt(New(), 36)))
	sb.WriteByte('-')
	for range 4 {
		sb.WriteByte(referenceAlphabet[rand.IntN(len(referenceAlphabet))])
	}
	return sb.String()
}
