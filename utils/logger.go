package utils

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"
)

var (
	infoLogger  *log.Logger
	errorLogger *log.Logger
	once        sync.Once
)

func initLoggers() {
	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Fatal(err)
	}

	timestamp := time.Now().Format("2006-01-02")
	logFile, err := os.OpenFile(fmt.Sprintf("logs/app-%s.log", timestamp), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Fatal(err)
	}

	infoLogger = log.New(logFile, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	errorLogger = log.New(logFile, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
}

// LogInfo writes an info line to the daily log file.
func LogInfo(format string, v ...interface{}) {
	once.Do(initLoggers)
	infoLogger.Printf(format, v...)
}

// LogError writes an error line to the daily log file.
func LogError(format string, v ...interface{}) {
	once.Do(initLoggers)
	errorLogger.Printf(format, v...)
}
