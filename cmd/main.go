package main

import (
	"context"
	"fmt"
	"os"

	"github.com/talentwire/article-service/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		fmt.Printf("Failed to init app: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	if err := a.EnsureBucket(context.Background()); err != nil {
		a.Log.Fatal("Bucket setup failed", "error", err)
	}

	a.Log.Info("Server listening", "port", a.Cfg.Port)
	if err := a.Run(); err != nil {
		a.Log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
