package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/justicelink/justicelink/tests/helpers"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	usage := `
Run a seeded MariaDB test container with the environment variables from the .env file.

Usage:

testcontainers [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file

example
  testcontainers -f /path/to/something/.env
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	} else {
		log.Printf("No environment file specified, using current environment variables\n")
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGTSTP, syscall.SIGQUIT)

	var testDB *helpers.TestDatabase
	go func() {
		var err error
		testDB, err = helpers.StartMariaDB(context.Background())
		if err != nil {
			log.Fatalf("Failed to create test container: %v\n", err)
		}
		log.Printf("MariaDB ready. DSN: %s\n", testDB.DSN())
		log.Printf("Export DB_TYPE=mariadb DB_HOST=%s DB_PORT=%s DB_DATABASE=%s DB_USER=%s DB_PASSWORD=%s\n",
			testDB.Host, testDB.Port, testDB.Database, testDB.User, testDB.Password)
	}()

	sig := <-sigs
	log.Printf("\nReceived signal: %v, terminating test container...\n", sig)
	if testDB != nil {
		testDB.Terminate(nil)
	}
}
