package cmd

import (
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

func LoadEnvFile() {
	var configPath string

	flag.StringVar(&configPath, "env", "", "path to load env from")
	flag.Parse()

	if configPath == "" {
		log.Printf("no env file specified, using os.Environ only")
		return
	}

	log.Printf("loading env from file %s", configPath)
	err := godotenv.Load(configPath)
	if err != nil {
		log.Fatalf("error loading .env file '%s': %v", configPath, err)
	}
}

// SetupLogging applies the slog level and, when logFile is set, tees log
// output to that file as well as stderr. The returned closer releases the
// file.
func SetupLogging(logFile string, level slog.Level) io.Closer {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	slog.SetLogLoggerLevel(level)

	if logFile == "" {
		return io.NopCloser(nil)
	}

	if err := os.MkdirAll(filepath.Dir(logFile), os.ModePerm); err != nil {
		log.Fatalf("error creating directory for log file: %v", err)
	}

	f, err := os.OpenFile(logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}

	log.SetOutput(io.MultiWriter(f, os.Stderr))
	return f
}
