package logging

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"
)

// Init configures the process-wide logger from the environment. LOG_LEVEL
// takes the usual logrus level names; LOG_JSON=true swaps in the JSON
// formatter for log shippers.
func Init() {
	log.SetOutput(os.Stdout)
	if os.Getenv("LOG_JSON") == "true" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	if level, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}
}
