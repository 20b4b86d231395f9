package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Lock   bool
	Index  bool
	Script bool
	RPC    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lock = boolEnv("REMODEL_DEBUG_LOCK")
	d.Index = boolEnv("REMODEL_DEBUG_INDEX")
	d.Script = boolEnv("REMODEL_DEBUG_SCRIPT")
	d.RPC = boolEnv("REMODEL_DEBUG_RPC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lock() bool {
	return d.Lock
}
func Index() bool {
	return d.Index
}
func Script() bool {
	return d.Script
}
func RPC() bool {
	return d.RPC
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}
