package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Apply   bool
	Project bool
	Coerce  bool
	Rules   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Apply = boolEnv("FIELDWISE_DEBUG_APPLY")
	d.Project = boolEnv("FIELDWISE_DEBUG_PROJECT")
	d.Coerce = boolEnv("FIELDWISE_DEBUG_COERCE")
	d.Rules = boolEnv("FIELDWISE_DEBUG_RULES")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Apply() bool {
	return d.Apply
}
func Project() bool {
	return d.Project
}
func Coerce() bool {
	return d.Coerce
}
func Rules() bool {
	return d.Rules
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
