package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"stockdash/cmd"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	fmt.Println(os.Getenv("commit_hash"))
	apiHandler, cfg, err := cmd.InitializeDependencies(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	err = apiHandler.StartApi(cfg.Server.Port)
	if err != nil {
		log.Fatal(err)
	}
}
