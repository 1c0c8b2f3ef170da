package main

import (
	"flag"
	"os"
	"strconv"
)

var (
	flagRunAddr       string
	flagLogLevel      string
	flagDatabaseURI   string
	flagTimezone      string
	flagStrictCatalog bool
)

func parseFlags() {
	flag.StringVar(&flagRunAddr, "a", ":8080", "address and port to run server")
	flag.StringVar(&flagLogLevel, "l", "info", "log level")
	flag.StringVar(&flagDatabaseURI, "d", "", "database URI, empty disables booking records")
	flag.StringVar(&flagTimezone, "tz", "America/New_York", "time zone used to decide what today is")
	flag.BoolVar(&flagStrictCatalog, "strict", false, "also validate movie, theatre and seat type")
	flag.Parse()

	if envRunAddr := os.Getenv("RUN_ADDR"); envRunAddr != "" {
		flagRunAddr = envRunAddr
	}
	if envLogLevel := os.Getenv("LOG_LEVEL"); envLogLevel != "" {
		flagLogLevel = envLogLevel
	}
	if envDatabaseURI := os.Getenv("DATABASE_URI"); envDatabaseURI != "" {
		flagDatabaseURI = envDatabaseURI
	}
	if envTimezone := os.Getenv("BOT_TIMEZONE"); envTimezone != "" {
		flagTimezone = envTimezone
	}
	if envStrict := os.Getenv("STRICT_CATALOG"); envStrict != "" {
		if v, err := strconv.ParseBool(envStrict); err == nil {
			flagStrictCatalog = v
		}
	}
}
