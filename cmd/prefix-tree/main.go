package main

import (
	"os"

	"go.uber.org/zap"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		zap.L().Error("prefix-tree failed", zap.Error(err))
		_ = zap.L().Sync()
		os.Exit(1)
	}
	_ = zap.L().Sync()
}
