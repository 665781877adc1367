package main

import (
	"github.com/datazip-inc/tablefilter/protocol"
	"github.com/datazip-inc/tablefilter/utils/logger"
	"github.com/datazip-inc/tablefilter/utils/safego"
)

func main() {
	defer safego.Recovery()

	if err := protocol.CreateRootCommand().Execute(); err != nil {
		logger.Fatal(err)
	}
}
