package main

import (
	"fmt"
	"log"
	"os"

	"github.com/presbrey/dotazure"
)

func main() {
	const envVarName = "AZURE_KEYVAULT_URL"

	loaded, err := dotazure.Load()
	if err != nil {
		log.Fatal(err)
	}
	if loaded {
		fmt.Fprintln(os.Stderr, "loaded environment variables")
	}

	endpoint, ok := os.LookupEnv(envVarName)
	if !ok {
		log.Fatalf("%s not set", envVarName)
	}
	fmt.Println(endpoint)
}
