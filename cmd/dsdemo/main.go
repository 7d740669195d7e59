// The dsdemo command exercises the heap and hashtable packages
// with pseudo-random input and logs what happens.
//
// Usage:
//
//	dsdemo [flags] heap|hashtable
//
// Every flag can also be set from the environment as DSDEMO_<FLAG>,
// with dashes replaced by underscores (for example DSDEMO_MAX_LOAD).
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "dsdemo: %v\n", err)
		os.Exit(2)
	}
	log := newLogger(cfg.LogLevel)
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("demo failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg config, log *zap.Logger) error {
	switch cfg.Demo {
	case "heap":
		return runHeap(cfg, log)
	case "hashtable":
		return runHashTable(cfg, log)
	}
	return fmt.Errorf("unknown demo %q", cfg.Demo)
}
