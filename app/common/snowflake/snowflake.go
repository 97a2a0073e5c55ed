package snowflake

import (
	"hash/fnv"
	"os"
	"strconv"
	"sync"

	bwsnowflake "github.com/bwmarrin/snowflake"
)

var (
	once sync.Once
	node *bwsnowflake.Node
)

// SetNodeID overrides the derived node ID (0-1023). Call once at bootstrap.
func SetNodeID(id int64) error {
	var err error
	once.Do(func() {})
	node, err = bwsnowflake.NewNode(id & 0x3FF)
	return err
}

func initNode() {
	if node != nil {
		return
	}
	// derive node from hostname hash (10 bits)
	host, _ := os.Hostname()
	h := fnv.New32a()
	_, _ = h.Write([]byte(host))
	n, err := bwsnowflake.NewNode(int64(h.Sum32()) & 0x3FF)
	if err != nil {
		n, _ = bwsnowflake.NewNode(1)
	}
	node = n
}

// Next returns a new snowflake id.
func Next() int64 {
	once.Do(initNode)
	return node.Generate().Int64()
}

// NextString returns a new snowflake id as a decimal string,
// the form session ids travel in over the API.
func NextString() string {
	return strconv.FormatInt(Next(), 10)
}
